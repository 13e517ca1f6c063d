package postgres

import (
	"database/sql"
	"time"
)

type playerProfileTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Team      sql.NullString `db:"team"`
	Position  sql.NullString `db:"position"`
	ImageURL  sql.NullString `db:"image_url"`
	Bio       sql.NullString `db:"bio"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}
