package battedball

import "errors"

var (
	// ErrSourceUnavailable means the hit source could not be opened or read at all.
	ErrSourceUnavailable = errors.New("hit source unavailable")
	// ErrMalformedRecord means a record could not be parsed; no partial results are returned.
	ErrMalformedRecord = errors.New("malformed hit record")
)

// Hit is one batted-ball event measured by the swing sensors.
type Hit struct {
	ID           string
	ExitVelocity float64 // mph
	HitDistance  float64 // feet
	LaunchAngle  float64 // degrees
	Season       int
	PlayerName   string
}
