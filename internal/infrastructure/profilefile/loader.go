package profilefile

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	"github.com/spf13/viper"
)

type document struct {
	Defaults defaultsDocument  `mapstructure:"defaults"`
	Profiles []profileDocument `mapstructure:"profiles"`
}

type defaultsDocument struct {
	Team            string `mapstructure:"team"`
	Position        string `mapstructure:"position"`
	Bio             string `mapstructure:"bio"`
	ImageURLPattern string `mapstructure:"image_url_pattern"`
}

type profileDocument struct {
	Name     string `mapstructure:"name"`
	Team     string `mapstructure:"team"`
	Position string `mapstructure:"position"`
	ImageURL string `mapstructure:"image_url"`
	Bio      string `mapstructure:"bio"`
}

// Repository serves player profiles from a YAML, JSON or TOML file.
// The file is read on every call; wrap it with the cache decorator to avoid that.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, profiles, err := Load(r.path)
	return profiles, err
}

// Defaults returns the defaults section of the file, with blanks filled from profile.DefaultDefaults.
func (r *Repository) Defaults() (profile.Defaults, error) {
	defaults, _, err := Load(r.path)
	return defaults, err
}

func Load(path string) (profile.Defaults, []profile.Profile, error) {
	if strings.TrimSpace(path) == "" {
		return profile.Defaults{}, nil, fmt.Errorf("profile file path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return profile.Defaults{}, nil, fmt.Errorf("read profile file %s: %w", path, err)
	}

	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return profile.Defaults{}, nil, fmt.Errorf("decode profile file %s: %w", path, err)
	}

	profiles := make([]profile.Profile, 0, len(doc.Profiles))
	for i, p := range doc.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return profile.Defaults{}, nil, fmt.Errorf("profile file %s: profiles[%d].name is required", path, i)
		}
		profiles = append(profiles, profile.Profile{
			Name:     strings.TrimSpace(p.Name),
			Team:     p.Team,
			Position: p.Position,
			ImageURL: p.ImageURL,
			Bio:      p.Bio,
		})
	}

	defaults := profile.Defaults{
		Team:            doc.Defaults.Team,
		Position:        doc.Defaults.Position,
		Bio:             doc.Defaults.Bio,
		ImageURLPattern: doc.Defaults.ImageURLPattern,
	}
	if strings.Count(defaults.ImageURLPattern, "%") > 1 {
		return profile.Defaults{}, nil, fmt.Errorf("profile file %s: defaults.image_url_pattern allows at most one %%d verb", path)
	}

	return defaults, profiles, nil
}

func setDefaults(v *viper.Viper) {
	base := profile.DefaultDefaults()
	v.SetDefault("defaults.team", base.Team)
	v.SetDefault("defaults.position", base.Position)
	v.SetDefault("defaults.bio", base.Bio)
	v.SetDefault("defaults.image_url_pattern", base.ImageURLPattern)
}
