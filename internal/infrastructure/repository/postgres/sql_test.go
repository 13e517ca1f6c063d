package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	qb "github.com/riskibarqy/batting-insights/internal/platform/querybuilder"
)

func TestSourceUnavailable(t *testing.T) {
	t.Run("marks driver errors", func(t *testing.T) {
		err := sourceUnavailable("select batted balls", fakeErr("pq: relation batted_balls does not exist"))
		if !errors.Is(err, battedball.ErrSourceUnavailable) {
			t.Fatalf("expected ErrSourceUnavailable, got %v", err)
		}
	})

	t.Run("passes cancellation through", func(t *testing.T) {
		err := sourceUnavailable("select batted balls", context.Canceled)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if errors.Is(err, battedball.ErrSourceUnavailable) {
			t.Fatalf("cancellation must not look like an outage: %v", err)
		}
	})
}

func TestBattedBallModelRoundTrip(t *testing.T) {
	hit := battedball.Hit{ID: "7", ExitVelocity: 103.9, HitDistance: 410, LaunchAngle: 27, Season: 2023, PlayerName: "Shohei Ohtani"}

	row := rowFromHit("batch-1", hit)
	if row.ImportBatchID != "batch-1" {
		t.Fatalf("expected batch id on row, got %q", row.ImportBatchID)
	}
	if got := hitFromRow(row); got != hit {
		t.Fatalf("unexpected hit from row: %+v", got)
	}
}

func TestBattedBallInsertColumns(t *testing.T) {
	cols, err := qb.ColumnsOf(battedBallTableModel{})
	if err != nil {
		t.Fatalf("columns of: %v", err)
	}

	want := []string{"play_id", "exit_velocity", "hit_distance", "launch_angle", "season", "player_name", "import_batch_id"}
	if len(cols) != len(want) {
		t.Fatalf("unexpected columns: %v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("column %d: want %s, got %s", i, want[i], cols[i])
		}
	}
}

func TestProfileFromRow_NullsStayBlank(t *testing.T) {
	got := profileFromRow(playerProfileTableModel{Name: "Mookie Betts"})
	if got.Name != "Mookie Betts" || got.Team != "" || got.Bio != "" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
