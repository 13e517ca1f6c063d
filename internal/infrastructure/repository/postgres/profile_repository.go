package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	qb "github.com/riskibarqy/batting-insights/internal/platform/querybuilder"
)

var playerProfileSelectColumns = []string{
	"id",
	"name",
	"team",
	"position",
	"image_url",
	"bio",
	"created_at",
	"updated_at",
	"deleted_at",
}

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	query, args, err := qb.Select(playerProfileSelectColumns...).From("player_profiles").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player profiles query: %w", err)
	}

	var rows []playerProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, sourceUnavailable("select player profiles", err)
	}

	out := make([]profile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, profileFromRow(row))
	}

	return out, nil
}

// Null columns stay blank so the directory fills them from its defaults.
func profileFromRow(row playerProfileTableModel) profile.Profile {
	return profile.Profile{
		Name:     row.Name,
		Team:     row.Team.String,
		Position: row.Position.String,
		ImageURL: row.ImageURL.String,
		Bio:      row.Bio.String,
	}
}
