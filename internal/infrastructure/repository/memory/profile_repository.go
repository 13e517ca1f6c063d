package memory

import (
	"context"

	"github.com/riskibarqy/batting-insights/internal/domain/profile"
)

type ProfileRepository struct {
	profiles []profile.Profile
}

func NewProfileRepository(profiles []profile.Profile) *ProfileRepository {
	return &ProfileRepository{profiles: append([]profile.Profile(nil), profiles...)}
}

func (r *ProfileRepository) ListProfiles(_ context.Context) ([]profile.Profile, error) {
	return append([]profile.Profile(nil), r.profiles...), nil
}
