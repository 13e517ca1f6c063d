package playerstats

import (
	"errors"
	"math/rand/v2"
	"testing"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestProject_NeutralDrawKeepsLatestSeason(t *testing.T) {
	history := []SeasonStat{
		{Player: "Mike Trout", Year: 2022, Avg: 0.5, HR: 1, RBI: 4},
		{Player: "Mike Trout", Year: 2023, Avg: 0.75, HR: 2, RBI: 7},
	}

	got, err := Project(history, fixedSource(0.5))
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if len(got) != ProjectedSeasons {
		t.Fatalf("expected %d projected seasons, got %d", ProjectedSeasons, len(got))
	}
	for i, p := range got {
		if p.Year != 2024+i {
			t.Fatalf("projection %d: expected year %d, got %d", i, 2024+i, p.Year)
		}
		if p.Avg != 0.75 || p.HR != 2 || p.RBI != 7 {
			t.Fatalf("projection %d: expected unchanged stats, got %+v", i, p)
		}
		if p.Player != "Mike Trout" {
			t.Fatalf("projection %d: unexpected player %q", i, p.Player)
		}
	}
}

func TestProject_ExtremeDraws(t *testing.T) {
	history := []SeasonStat{{Year: 2023, Avg: 0.8, HR: 30, RBI: 100}}

	low, err := Project(history, fixedSource(0))
	if err != nil {
		t.Fatalf("project low: %v", err)
	}
	if low[0].HR != 27 || low[0].RBI != 90 {
		t.Fatalf("unexpected low projection: %+v", low[0])
	}
	if diff := low[0].Avg - 0.76; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("unexpected low avg: %v", low[0].Avg)
	}
}

func TestProject_SeededBounds(t *testing.T) {
	history := []SeasonStat{{Year: 2023, Avg: 0.75, HR: 20, RBI: 60}}

	for seed := uint64(1); seed <= 200; seed++ {
		got, err := Project(history, rand.New(rand.NewPCG(seed, seed*31)))
		if err != nil {
			t.Fatalf("seed %d: project: %v", seed, err)
		}
		for _, p := range got {
			if p.Avg < 0.75*0.95 || p.Avg > 0.75*1.05 {
				t.Fatalf("seed %d: avg %v outside ±5%%", seed, p.Avg)
			}
			if p.HR < 18 || p.HR > 22 {
				t.Fatalf("seed %d: hr %d outside ±10%%", seed, p.HR)
			}
			if p.RBI < 54 || p.RBI > 66 {
				t.Fatalf("seed %d: rbi %d outside ±10%%", seed, p.RBI)
			}
		}
	}
}

func TestProject_SameSeedSameProjection(t *testing.T) {
	history := []SeasonStat{{Year: 2023, Avg: 0.75, HR: 20, RBI: 60}}

	first, _ := Project(history, rand.New(rand.NewPCG(7, 7)))
	second, _ := Project(history, rand.New(rand.NewPCG(7, 7)))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("projection %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestProject_EmptyHistoryFailsFast(t *testing.T) {
	if _, err := Project(nil, fixedSource(0.5)); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestProject_RequiresRandomSource(t *testing.T) {
	if _, err := Project([]SeasonStat{{Year: 2023}}, nil); !errors.Is(err, ErrNoRandomSource) {
		t.Fatalf("expected ErrNoRandomSource, got %v", err)
	}
}
