package playerstats

// SeasonStat is the yearly aggregate derived from a player's batted balls.
// Avg is the quality-hit ratio, not a traditional batting average.
type SeasonStat struct {
	Player string
	Year   int
	Avg    float64
	HR     int
	RBI    int
}

// CurrentStats is the display snapshot of the latest season.
// OPS is a placeholder metric (avg + 0.5), not on-base plus slugging.
type CurrentStats struct {
	Avg string
	HR  int
	RBI int
	OPS string
}

// ContactProfile summarizes the raw sensor readings of the current season.
type ContactProfile struct {
	Season          int
	Hits            int
	QualityHits     int
	AvgExitVelocity float64
	AvgLaunchAngle  float64
	MaxDistance     float64
}

// Bundle is everything the presentation layer needs for one player card.
type Bundle struct {
	ID            int
	Name          string
	Team          string
	Position      string
	ImageURL      string
	Bio           string
	CurrentSeason int
	Current       CurrentStats
	Contact       ContactProfile
	Historical    []SeasonStat
	Predicted     []SeasonStat
}
