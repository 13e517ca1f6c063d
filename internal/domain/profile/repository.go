package profile

import "context"

// Repository describes where player metadata comes from.
type Repository interface {
	ListProfiles(ctx context.Context) ([]Profile, error)
}
