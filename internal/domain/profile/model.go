package profile

import (
	"fmt"
	"strings"
)

// Profile holds the descriptive metadata shown next to a player's numbers.
type Profile struct {
	Name     string
	Team     string
	Position string
	ImageURL string
	Bio      string
}

// Defaults fill in any metadata missing for a player.
// ImageURLPattern receives the player's 1-based id through a single %d verb.
type Defaults struct {
	Team            string
	Position        string
	Bio             string
	ImageURLPattern string
}

func DefaultDefaults() Defaults {
	return Defaults{
		Team:            "generic team",
		Position:        "generic player",
		Bio:             "Professional baseball player with exceptional hitting capabilities.",
		ImageURLPattern: "https://images.unsplash.com/photo-%d?auto=format&fit=crop&q=80&w=100&h=100",
	}
}

// Directory is the injected name → profile lookup with defaults.
type Directory struct {
	byName   map[string]Profile
	defaults Defaults
}

func NewDirectory(profiles []Profile, defaults Defaults) Directory {
	base := DefaultDefaults()
	if strings.TrimSpace(defaults.Team) == "" {
		defaults.Team = base.Team
	}
	if strings.TrimSpace(defaults.Position) == "" {
		defaults.Position = base.Position
	}
	if strings.TrimSpace(defaults.Bio) == "" {
		defaults.Bio = base.Bio
	}
	if strings.TrimSpace(defaults.ImageURLPattern) == "" {
		defaults.ImageURLPattern = base.ImageURLPattern
	}

	byName := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		p.Name = name
		byName[name] = p
	}

	return Directory{byName: byName, defaults: defaults}
}

func (d Directory) Defaults() Defaults {
	return d.defaults
}

func (d Directory) Len() int {
	return len(d.byName)
}

// Lookup never fails: unknown names and blank fields get the directory defaults.
func (d Directory) Lookup(name string, id int) Profile {
	if d.byName == nil && d.defaults == (Defaults{}) {
		d = NewDirectory(nil, Defaults{})
	}

	p, ok := d.byName[name]
	if !ok {
		p = Profile{}
	}
	p.Name = name
	if strings.TrimSpace(p.Team) == "" {
		p.Team = d.defaults.Team
	}
	if strings.TrimSpace(p.Position) == "" {
		p.Position = d.defaults.Position
	}
	if strings.TrimSpace(p.Bio) == "" {
		p.Bio = d.defaults.Bio
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		p.ImageURL = d.placeholderImage(id)
	}

	return p
}

func (d Directory) placeholderImage(id int) string {
	if strings.Count(d.defaults.ImageURLPattern, "%") == 1 && strings.Contains(d.defaults.ImageURLPattern, "%d") {
		return fmt.Sprintf(d.defaults.ImageURLPattern, id)
	}
	return d.defaults.ImageURLPattern
}

// BuiltinProfiles is the metadata shipped with the service for well-known hitters.
func BuiltinProfiles() []Profile {
	return []Profile{
		{
			Name:     "Mike Trout",
			Team:     "Los Angeles Angels",
			Position: "CF",
			ImageURL: "https://images.unsplash.com/photo-1631194758628-71ec7c35137e?auto=format&fit=crop&q=80&w=100&h=100",
			Bio:      "Mike Trout is widely regarded as one of the greatest baseball players of all time. His combination of power, speed, and defensive prowess has earned him numerous accolades.",
		},
		{
			Name:     "Shohei Ohtani",
			Team:     "Los Angeles Dodgers",
			Position: "DH/SP",
			ImageURL: "https://images.unsplash.com/photo-1629285483773-6b5cde2171d1?auto=format&fit=crop&q=80&w=100&h=100",
			Bio:      "Shohei Ohtani is a unique talent in MLB history, excelling both as a pitcher and hitter. His two-way ability has drawn comparisons to Babe Ruth.",
		},
	}
}
