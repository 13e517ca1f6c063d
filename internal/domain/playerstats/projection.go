package playerstats

import (
	"errors"
	"math"
)

const (
	ProjectedSeasons = 3

	avgJitter = 0.05
	hrJitter  = 0.10
	rbiJitter = 0.10
)

var (
	ErrEmptyHistory   = errors.New("player has no historical seasons")
	ErrNoRandomSource = errors.New("random source is required for projections")
)

// Source yields uniform values in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Project synthesizes the three seasons after the latest historical one.
// Every projected season is drawn from the latest season, never from a previous projection,
// and each field gets its own draw.
func Project(history []SeasonStat, rnd Source) ([]SeasonStat, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	if rnd == nil {
		return nil, ErrNoRandomSource
	}

	last := history[len(history)-1]
	out := make([]SeasonStat, 0, ProjectedSeasons)
	for i := 1; i <= ProjectedSeasons; i++ {
		out = append(out, SeasonStat{
			Player: last.Player,
			Year:   last.Year + i,
			Avg:    last.Avg * (1 + jitter(rnd, avgJitter)),
			HR:     int(math.Round(float64(last.HR) * (1 + jitter(rnd, hrJitter)))),
			RBI:    int(math.Round(float64(last.RBI) * (1 + jitter(rnd, rbiJitter)))),
		})
	}

	return out, nil
}

// jitter maps a [0,1) draw onto [-spread, spread).
func jitter(rnd Source, spread float64) float64 {
	return rnd.Float64()*2*spread - spread
}
