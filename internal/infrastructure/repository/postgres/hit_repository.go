package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	qb "github.com/riskibarqy/batting-insights/internal/platform/querybuilder"
)

const battedBallsTable = "batted_balls"

// postgres caps bind parameters per statement at 65535.
const maxBindParams = 65535

var battedBallSelectColumns = []string{
	"id",
	"play_id",
	"exit_velocity",
	"hit_distance",
	"launch_angle",
	"season",
	"player_name",
	"import_batch_id",
	"created_at",
}

type HitRepository struct {
	db *sqlx.DB
}

func NewHitRepository(db *sqlx.DB) *HitRepository {
	return &HitRepository{db: db}
}

func (r *HitRepository) ListHits(ctx context.Context) ([]battedball.Hit, error) {
	query, args, err := qb.Select(battedBallSelectColumns...).From(battedBallsTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batted balls query: %w", err)
	}

	var rows []battedBallTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, sourceUnavailable("select batted balls", err)
	}

	out := make([]battedball.Hit, 0, len(rows))
	for _, row := range rows {
		out = append(out, hitFromRow(row))
	}

	return out, nil
}

// InsertHits writes hits tagged with batchID and returns the number of new rows.
// Rows whose play_id already exists are skipped.
func (r *HitRepository) InsertHits(ctx context.Context, batchID string, hits []battedball.Hit) (int64, error) {
	if len(hits) == 0 {
		return 0, nil
	}

	columns, err := qb.ColumnsOf(battedBallTableModel{})
	if err != nil {
		return 0, fmt.Errorf("resolve batted ball columns: %w", err)
	}
	chunkSize := maxBindParams / len(columns)

	var inserted int64
	for start := 0; start < len(hits); start += chunkSize {
		end := min(start+chunkSize, len(hits))

		builder := qb.InsertInto(battedBallsTable).Columns(columns...).Suffix("ON CONFLICT (play_id) DO NOTHING")
		for _, hit := range hits[start:end] {
			values, err := qb.ValuesOf(rowFromHit(batchID, hit))
			if err != nil {
				return inserted, fmt.Errorf("resolve batted ball values: %w", err)
			}
			builder.Values(values...)
		}

		query, args, err := builder.ToSQL()
		if err != nil {
			return inserted, fmt.Errorf("build insert batted balls query: %w", err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, sourceUnavailable("insert batted balls", err)
		}
		if affected, err := res.RowsAffected(); err == nil {
			inserted += affected
		}
	}

	return inserted, nil
}

func hitFromRow(row battedBallTableModel) battedball.Hit {
	return battedball.Hit{
		ID:           row.PlayID,
		ExitVelocity: row.ExitVelocity,
		HitDistance:  row.HitDistance,
		LaunchAngle:  row.LaunchAngle,
		Season:       row.Season,
		PlayerName:   row.PlayerName,
	}
}

func rowFromHit(batchID string, hit battedball.Hit) battedBallTableModel {
	return battedBallTableModel{
		PlayID:        hit.ID,
		ExitVelocity:  hit.ExitVelocity,
		HitDistance:   hit.HitDistance,
		LaunchAngle:   hit.LaunchAngle,
		Season:        hit.Season,
		PlayerName:    hit.PlayerName,
		ImportBatchID: batchID,
	}
}
