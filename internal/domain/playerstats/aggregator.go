package playerstats

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/domain/profile"
)

// Aggregator turns a flat list of hits into one Bundle per player.
// It holds no state between passes; Rand must not be shared across goroutines.
type Aggregator struct {
	Directory profile.Directory
	Rand      Source
}

type playerGroup struct {
	name string
	hits []battedball.Hit
}

// Aggregate groups hits by player in order of first appearance and builds each bundle.
// Any player failure aborts the whole pass.
func (a Aggregator) Aggregate(hits []battedball.Hit) ([]Bundle, error) {
	if a.Rand == nil {
		return nil, ErrNoRandomSource
	}

	groups := groupByPlayer(hits)
	out := make([]Bundle, 0, len(groups))
	for i, g := range groups {
		bundle, err := a.buildBundle(i+1, g)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", g.name, err)
		}
		out = append(out, bundle)
	}

	return out, nil
}

func (a Aggregator) buildBundle(id int, g playerGroup) (Bundle, error) {
	bySeason := make(map[int][]battedball.Hit)
	for _, h := range g.hits {
		bySeason[h.Season] = append(bySeason[h.Season], h)
	}

	seasons := make([]int, 0, len(bySeason))
	for season := range bySeason {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	history := make([]SeasonStat, 0, len(seasons))
	for _, season := range seasons {
		history = append(history, ComputeSeason(g.name, season, bySeason[season]))
	}
	if len(history) == 0 {
		return Bundle{}, ErrEmptyHistory
	}

	predicted, err := Project(history, a.Rand)
	if err != nil {
		return Bundle{}, err
	}

	current := history[len(history)-1]
	meta := a.Directory.Lookup(g.name, id)

	return Bundle{
		ID:            id,
		Name:          g.name,
		Team:          meta.Team,
		Position:      meta.Position,
		ImageURL:      meta.ImageURL,
		Bio:           meta.Bio,
		CurrentSeason: current.Year,
		Current:       Snapshot(current),
		Contact:       summarizeContact(current.Year, bySeason[current.Year]),
		Historical:    history,
		Predicted:     predicted,
	}, nil
}

func groupByPlayer(hits []battedball.Hit) []playerGroup {
	index := make(map[string]int)
	groups := make([]playerGroup, 0)
	for _, h := range hits {
		i, ok := index[h.PlayerName]
		if !ok {
			i = len(groups)
			index[h.PlayerName] = i
			groups = append(groups, playerGroup{name: h.PlayerName})
		}
		groups[i].hits = append(groups[i].hits, h)
	}
	return groups
}
