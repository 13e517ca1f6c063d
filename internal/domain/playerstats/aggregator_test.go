package playerstats

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/domain/profile"
)

func sampleHits() []battedball.Hit {
	hits := troutSeason2023()
	hits = append(hits,
		battedball.Hit{ID: "5", ExitVelocity: 107.8, HitDistance: 432, LaunchAngle: 30, Season: 2023, PlayerName: "Shohei Ohtani"},
		battedball.Hit{ID: "6", ExitVelocity: 112.4, HitDistance: 465, LaunchAngle: 35, Season: 2023, PlayerName: "Shohei Ohtani"},
		battedball.Hit{ID: "7", ExitVelocity: 103.9, HitDistance: 410, LaunchAngle: 27, Season: 2023, PlayerName: "Shohei Ohtani"},
		battedball.Hit{ID: "8", ExitVelocity: 95.6, HitDistance: 375, LaunchAngle: 22, Season: 2023, PlayerName: "Shohei Ohtani"},
		battedball.Hit{ID: "9", ExitVelocity: 108.3, HitDistance: 445, LaunchAngle: 31, Season: 2022, PlayerName: "Mike Trout"},
		battedball.Hit{ID: "10", ExitVelocity: 99.5, HitDistance: 392, LaunchAngle: 26, Season: 2022, PlayerName: "Mike Trout"},
		battedball.Hit{ID: "11", ExitVelocity: 106.7, HitDistance: 428, LaunchAngle: 29, Season: 2022, PlayerName: "Mike Trout"},
		battedball.Hit{ID: "12", ExitVelocity: 93.8, HitDistance: 365, LaunchAngle: 20, Season: 2022, PlayerName: "Mike Trout"},
	)
	return hits
}

func newTestAggregator(seed uint64) Aggregator {
	return Aggregator{
		Directory: profile.NewDirectory(profile.BuiltinProfiles(), profile.DefaultDefaults()),
		Rand:      rand.New(rand.NewPCG(seed, seed)),
	}
}

func TestAggregate_GroupsInFirstAppearanceOrder(t *testing.T) {
	bundles, err := newTestAggregator(1).Aggregate(sampleHits())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if len(bundles) != 2 {
		t.Fatalf("expected 2 players, got %d", len(bundles))
	}
	if bundles[0].ID != 1 || bundles[0].Name != "Mike Trout" {
		t.Fatalf("unexpected first bundle: id=%d name=%s", bundles[0].ID, bundles[0].Name)
	}
	if bundles[1].ID != 2 || bundles[1].Name != "Shohei Ohtani" {
		t.Fatalf("unexpected second bundle: id=%d name=%s", bundles[1].ID, bundles[1].Name)
	}
}

func TestAggregate_HistoricalAndCurrent(t *testing.T) {
	bundles, err := newTestAggregator(1).Aggregate(sampleHits())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	trout := bundles[0]
	wantHistory := []SeasonStat{
		{Player: "Mike Trout", Year: 2022, Avg: 0.75, HR: 2, RBI: 7},
		{Player: "Mike Trout", Year: 2023, Avg: 0.75, HR: 2, RBI: 7},
	}
	if diff := cmp.Diff(wantHistory, trout.Historical); diff != "" {
		t.Fatalf("unexpected trout history (-want +got):\n%s", diff)
	}
	if trout.CurrentSeason != 2023 {
		t.Fatalf("expected current season 2023, got %d", trout.CurrentSeason)
	}
	wantCurrent := CurrentStats{Avg: "0.750", HR: 2, RBI: 7, OPS: "1.250"}
	if trout.Current != wantCurrent {
		t.Fatalf("unexpected current stats: %+v", trout.Current)
	}
	if trout.Team != "Los Angeles Angels" || trout.Position != "CF" {
		t.Fatalf("unexpected metadata: team=%s position=%s", trout.Team, trout.Position)
	}

	ohtani := bundles[1]
	wantOhtani := CurrentStats{Avg: "1.000", HR: 3, RBI: 10, OPS: "1.500"}
	if ohtani.Current != wantOhtani {
		t.Fatalf("unexpected ohtani current stats: %+v", ohtani.Current)
	}
	if ohtani.Contact.Season != 2023 || ohtani.Contact.Hits != 4 || ohtani.Contact.MaxDistance != 465 {
		t.Fatalf("unexpected ohtani contact profile: %+v", ohtani.Contact)
	}
}

func TestAggregate_PredictionsFollowLatestSeason(t *testing.T) {
	bundles, err := newTestAggregator(42).Aggregate(sampleHits())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	for _, b := range bundles {
		if len(b.Predicted) != ProjectedSeasons {
			t.Fatalf("%s: expected %d predictions, got %d", b.Name, ProjectedSeasons, len(b.Predicted))
		}
		last := b.Historical[len(b.Historical)-1]
		for i, p := range b.Predicted {
			if p.Year != b.CurrentSeason+i+1 {
				t.Fatalf("%s: prediction %d has year %d", b.Name, i, p.Year)
			}
			if p.Avg < last.Avg*0.95 || p.Avg > last.Avg*1.05 {
				t.Fatalf("%s: predicted avg %v out of bounds", b.Name, p.Avg)
			}
		}
	}
}

func TestAggregate_HistoricalIsIdempotent(t *testing.T) {
	first, err := newTestAggregator(1).Aggregate(sampleHits())
	if err != nil {
		t.Fatalf("first aggregate: %v", err)
	}
	second, err := newTestAggregator(99).Aggregate(sampleHits())
	if err != nil {
		t.Fatalf("second aggregate: %v", err)
	}

	for i := range first {
		if diff := cmp.Diff(first[i].Historical, second[i].Historical); diff != "" {
			t.Fatalf("historical data changed between passes (-first +second):\n%s", diff)
		}
	}
}

func TestAggregate_UnknownPlayerGetsDefaults(t *testing.T) {
	hits := []battedball.Hit{
		{ID: "1", ExitVelocity: 88, HitDistance: 200, LaunchAngle: 10, Season: 2021, PlayerName: "Rookie Prospect"},
	}

	bundles, err := newTestAggregator(1).Aggregate(hits)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	got := bundles[0]
	defaults := profile.DefaultDefaults()
	if got.Team != defaults.Team || got.Position != defaults.Position || got.Bio != defaults.Bio {
		t.Fatalf("expected default metadata, got team=%q position=%q bio=%q", got.Team, got.Position, got.Bio)
	}
	if got.ImageURL != "https://images.unsplash.com/photo-1?auto=format&fit=crop&q=80&w=100&h=100" {
		t.Fatalf("unexpected placeholder image: %s", got.ImageURL)
	}
	if got.Current.Avg != "0.000" || got.Current.OPS != "0.500" {
		t.Fatalf("unexpected current stats: %+v", got.Current)
	}
}

func TestAggregate_HistoricalLengthMatchesDistinctSeasons(t *testing.T) {
	hits := []battedball.Hit{
		{PlayerName: "A", Season: 2019, ExitVelocity: 100},
		{PlayerName: "A", Season: 2021, ExitVelocity: 90},
		{PlayerName: "A", Season: 2019, ExitVelocity: 99},
		{PlayerName: "A", Season: 2020, ExitVelocity: 101},
	}

	bundles, err := newTestAggregator(3).Aggregate(hits)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	years := make([]int, 0)
	for _, s := range bundles[0].Historical {
		years = append(years, s.Year)
		if s.Avg < 0 || s.Avg > 1 {
			t.Fatalf("avg %v out of [0,1]", s.Avg)
		}
	}
	if diff := cmp.Diff([]int{2019, 2020, 2021}, years); diff != "" {
		t.Fatalf("unexpected seasons (-want +got):\n%s", diff)
	}
	if bundles[0].Predicted[0].Year != 2022 {
		t.Fatalf("expected first prediction 2022, got %d", bundles[0].Predicted[0].Year)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	bundles, err := newTestAggregator(1).Aggregate(nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(bundles) != 0 {
		t.Fatalf("expected no bundles, got %d", len(bundles))
	}
}

func TestAggregate_RequiresRandomSource(t *testing.T) {
	_, err := Aggregator{}.Aggregate(sampleHits())
	if !errors.Is(err, ErrNoRandomSource) {
		t.Fatalf("expected ErrNoRandomSource, got %v", err)
	}
}
