package playerstats

import (
	"math"
	"math/big"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Thresholds are strict: a value equal to the threshold does not qualify.
const (
	QualityExitVelocityMPH = 95.0
	HomeRunLaunchAngleDeg  = 25.0
	HomeRunDistanceFeet    = 400.0

	rbiPerHomeRun    = 2.5
	rbiPerQualityHit = 0.5
	opsProxyOffset   = 0.5
)

func IsQualityHit(h battedball.Hit) bool {
	return h.ExitVelocity > QualityExitVelocityMPH
}

func IsHomeRun(h battedball.Hit) bool {
	return h.LaunchAngle > HomeRunLaunchAngleDeg &&
		h.ExitVelocity > QualityExitVelocityMPH &&
		h.HitDistance > HomeRunDistanceFeet
}

// EstimateRBI rounds half away from zero, so 6.5 becomes 7.
func EstimateRBI(homeRuns, qualityHits int) int {
	return int(math.Round(float64(homeRuns)*rbiPerHomeRun + float64(qualityHits)*rbiPerQualityHit))
}

// ComputeSeason derives the season stat from that season's hits for one player.
func ComputeSeason(player string, year int, hits []battedball.Hit) SeasonStat {
	quality := 0
	homeRuns := 0
	for _, h := range hits {
		if IsQualityHit(h) {
			quality++
		}
		if IsHomeRun(h) {
			homeRuns++
		}
	}

	avg := 0.0
	if len(hits) > 0 {
		avg = float64(quality) / float64(len(hits))
	}

	return SeasonStat{
		Player: player,
		Year:   year,
		Avg:    avg,
		HR:     homeRuns,
		RBI:    EstimateRBI(homeRuns, quality),
	}
}

// Snapshot formats a season stat the way the player card shows it.
func Snapshot(s SeasonStat) CurrentStats {
	return CurrentStats{
		Avg: formatRate(s.Avg),
		HR:  s.HR,
		RBI: s.RBI,
		OPS: formatRate(s.Avg + opsProxyOffset),
	}
}

// formatRate rounds the exact binary value with halves away from zero, so 0.0625 is "0.063".
func formatRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.000"
	}
	return new(big.Rat).SetFloat64(v).FloatString(3)
}

func summarizeContact(year int, hits []battedball.Hit) ContactProfile {
	out := ContactProfile{Season: year, Hits: len(hits)}
	if len(hits) == 0 {
		return out
	}

	velocities := make([]float64, 0, len(hits))
	angles := make([]float64, 0, len(hits))
	distances := make([]float64, 0, len(hits))
	for _, h := range hits {
		velocities = append(velocities, h.ExitVelocity)
		angles = append(angles, h.LaunchAngle)
		distances = append(distances, h.HitDistance)
		if IsQualityHit(h) {
			out.QualityHits++
		}
	}

	out.AvgExitVelocity = stat.Mean(velocities, nil)
	out.AvgLaunchAngle = stat.Mean(angles, nil)
	out.MaxDistance = floats.Max(distances)
	return out
}
