package battedball

import "context"

// Repository reads the full set of batted-ball events in source order.
type Repository interface {
	ListHits(ctx context.Context) ([]Hit, error)
}
