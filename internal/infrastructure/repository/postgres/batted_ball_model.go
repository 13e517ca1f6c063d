package postgres

import "time"

type battedBallTableModel struct {
	ID            int64     `db:"id" qb:"readonly"`
	PlayID        string    `db:"play_id"`
	ExitVelocity  float64   `db:"exit_velocity"`
	HitDistance   float64   `db:"hit_distance"`
	LaunchAngle   float64   `db:"launch_angle"`
	Season        int       `db:"season"`
	PlayerName    string    `db:"player_name"`
	ImportBatchID string    `db:"import_batch_id"`
	CreatedAt     time.Time `db:"created_at" qb:"readonly"`
}
