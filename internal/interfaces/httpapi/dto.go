package httpapi

import (
	"github.com/riskibarqy/batting-insights/internal/domain/playerstats"
	"github.com/riskibarqy/batting-insights/internal/usecase"
)

type seasonStatDTO struct {
	Year int     `json:"year"`
	Avg  float64 `json:"avg"`
	HR   int     `json:"hr"`
	RBI  int     `json:"rbi"`
}

type currentStatsDTO struct {
	Avg string `json:"avg"`
	HR  int    `json:"hr"`
	RBI int    `json:"rbi"`
	OPS string `json:"ops"`
}

type contactProfileDTO struct {
	Season          int     `json:"season"`
	Hits            int     `json:"hits"`
	QualityHits     int     `json:"qualityHits"`
	AvgExitVelocity float64 `json:"avgExitVelocity"`
	AvgLaunchAngle  float64 `json:"avgLaunchAngle"`
	MaxDistance     float64 `json:"maxDistance"`
}

type playerDTO struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Team           string            `json:"team"`
	Position       string            `json:"position"`
	Image          string            `json:"image"`
	Bio            string            `json:"bio"`
	CurrentStats   currentStatsDTO   `json:"currentStats"`
	HistoricalData []seasonStatDTO   `json:"historicalData"`
	PredictedData  []seasonStatDTO   `json:"predictedData"`
	ContactProfile contactProfileDTO `json:"contactProfile"`
}

type playerSeasonsDTO struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	HistoricalData []seasonStatDTO `json:"historicalData"`
	PredictedData  []seasonStatDTO `json:"predictedData"`
}

func playerToDTO(b playerstats.Bundle) playerDTO {
	return playerDTO{
		ID:       b.ID,
		Name:     b.Name,
		Team:     b.Team,
		Position: b.Position,
		Image:    b.ImageURL,
		Bio:      b.Bio,
		CurrentStats: currentStatsDTO{
			Avg: b.Current.Avg,
			HR:  b.Current.HR,
			RBI: b.Current.RBI,
			OPS: b.Current.OPS,
		},
		HistoricalData: seasonsToDTO(b.Historical),
		PredictedData:  seasonsToDTO(b.Predicted),
		ContactProfile: contactProfileDTO{
			Season:          b.Contact.Season,
			Hits:            b.Contact.Hits,
			QualityHits:     b.Contact.QualityHits,
			AvgExitVelocity: b.Contact.AvgExitVelocity,
			AvgLaunchAngle:  b.Contact.AvgLaunchAngle,
			MaxDistance:     b.Contact.MaxDistance,
		},
	}
}

func playersToDTO(bundles []playerstats.Bundle) []playerDTO {
	out := make([]playerDTO, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, playerToDTO(b))
	}
	return out
}

func playerSeasonsToDTO(v usecase.PlayerSeasons) playerSeasonsDTO {
	return playerSeasonsDTO{
		ID:             v.ID,
		Name:           v.Name,
		HistoricalData: seasonsToDTO(v.Historical),
		PredictedData:  seasonsToDTO(v.Predicted),
	}
}

func seasonsToDTO(stats []playerstats.SeasonStat) []seasonStatDTO {
	out := make([]seasonStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, seasonStatDTO{Year: s.Year, Avg: s.Avg, HR: s.HR, RBI: s.RBI})
	}
	return out
}
