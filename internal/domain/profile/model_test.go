package profile

import "testing"

func TestDirectory_Lookup(t *testing.T) {
	dir := NewDirectory([]Profile{
		{Name: " Aaron Judge ", Team: "New York Yankees", Position: "RF"},
		{Name: "   ", Team: "ignored"},
	}, Defaults{})

	if dir.Len() != 1 {
		t.Fatalf("expected 1 profile, got %d", dir.Len())
	}

	tests := []struct {
		name         string
		player       string
		id           int
		wantTeam     string
		wantPosition string
		wantImage    string
	}{
		{
			name:         "known player keeps fields and borrows missing image",
			player:       "Aaron Judge",
			id:           3,
			wantTeam:     "New York Yankees",
			wantPosition: "RF",
			wantImage:    "https://images.unsplash.com/photo-3?auto=format&fit=crop&q=80&w=100&h=100",
		},
		{
			name:         "unknown player gets defaults",
			player:       "Someone Else",
			id:           8,
			wantTeam:     "generic team",
			wantPosition: "generic player",
			wantImage:    "https://images.unsplash.com/photo-8?auto=format&fit=crop&q=80&w=100&h=100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dir.Lookup(tt.player, tt.id)
			if got.Name != tt.player {
				t.Fatalf("expected name %q, got %q", tt.player, got.Name)
			}
			if got.Team != tt.wantTeam || got.Position != tt.wantPosition {
				t.Fatalf("unexpected team/position: %q/%q", got.Team, got.Position)
			}
			if got.ImageURL != tt.wantImage {
				t.Fatalf("unexpected image %q", got.ImageURL)
			}
			if got.Bio != DefaultDefaults().Bio {
				t.Fatalf("expected default bio, got %q", got.Bio)
			}
		})
	}
}

func TestDirectory_CustomDefaults(t *testing.T) {
	dir := NewDirectory(nil, Defaults{
		Team:            "MLB Team",
		Position:        "Player",
		ImageURLPattern: "https://cdn.example.com/avatar.png",
	})

	got := dir.Lookup("Unlisted", 1)
	if got.Team != "MLB Team" || got.Position != "Player" {
		t.Fatalf("unexpected custom defaults: %+v", got)
	}
	if got.ImageURL != "https://cdn.example.com/avatar.png" {
		t.Fatalf("expected static placeholder, got %q", got.ImageURL)
	}
	if got.Bio != DefaultDefaults().Bio {
		t.Fatalf("expected fallback bio, got %q", got.Bio)
	}
}

func TestDirectory_ZeroValueUsesDefaults(t *testing.T) {
	var dir Directory
	got := dir.Lookup("Anyone", 2)
	if got.Team != "generic team" || got.Position != "generic player" {
		t.Fatalf("unexpected zero-value lookup: %+v", got)
	}
}

func TestBuiltinProfiles(t *testing.T) {
	dir := NewDirectory(BuiltinProfiles(), DefaultDefaults())
	got := dir.Lookup("Shohei Ohtani", 2)
	if got.Team != "Los Angeles Dodgers" || got.Position != "DH/SP" {
		t.Fatalf("unexpected builtin profile: %+v", got)
	}
}
