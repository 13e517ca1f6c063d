package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName
1,105.2,425,32,2023,Mike Trout
2,98.7,389,25,2023,Mike Trout

5,107.8,432,30,2023,Shohei Ohtani
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "player_stats.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHitRepository_ListHits(t *testing.T) {
	repo := NewHitRepository(writeCSV(t, sampleCSV))

	hits, err := repo.ListHits(t.Context())
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, battedball.Hit{
		ID:           "1",
		ExitVelocity: 105.2,
		HitDistance:  425,
		LaunchAngle:  32,
		Season:       2023,
		PlayerName:   "Mike Trout",
	}, hits[0])
	assert.Equal(t, "Shohei Ohtani", hits[2].PlayerName)
}

func TestHitRepository_MissingFile(t *testing.T) {
	repo := NewHitRepository(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := repo.ListHits(t.Context())
	require.Error(t, err)
	assert.True(t, errors.Is(err, battedball.ErrSourceUnavailable), "got %v", err)
	assert.False(t, errors.Is(err, battedball.ErrMalformedRecord))
}

func TestHitRepository_CanceledContext(t *testing.T) {
	repo := NewHitRepository(writeCSV(t, sampleCSV))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListHits(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "non numeric velocity",
			input:   "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n1,fast,425,32,2023,Mike Trout\n",
			wantMsg: `line 2: column ExitVelocity value "fast"`,
		},
		{
			name:    "fractional year",
			input:   "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n1,101,425,32,2023.5,Mike Trout\n",
			wantMsg: "column Year",
		},
		{
			name:    "empty distance",
			input:   "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n1,101,,32,2023,Mike Trout\n",
			wantMsg: "column HitDistance",
		},
		{
			name:    "not finite",
			input:   "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n1,101,425,NaN,2023,Mike Trout\n",
			wantMsg: "column LaunchAngle",
		},
		{
			name:    "missing column",
			input:   "play_id,ExitVelocity,HitDistance,Year,PlayerName\n1,101,425,2023,Mike Trout\n",
			wantMsg: "missing column LaunchAngle",
		},
		{
			name:    "ragged row",
			input:   "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n1,101,425,32,2023\n",
			wantMsg: "line 2",
		},
		{
			name:    "empty file",
			input:   "",
			wantMsg: "missing header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := Parse(strings.NewReader(tt.input), "hits.csv")
			require.Error(t, err)
			assert.Nil(t, hits)
			assert.ErrorIs(t, err, battedball.ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_HeaderAliasesAndOrder(t *testing.T) {
	input := "\ufeffSeason, player_name ,launch_angle,hit_distance,exit_velocity,id\n" +
		"2021,Juan Soto,12.5,301,99.1,abc-1\n"

	hits, err := Parse(strings.NewReader(input), "aliases.csv")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, battedball.Hit{
		ID:           "abc-1",
		ExitVelocity: 99.1,
		HitDistance:  301,
		LaunchAngle:  12.5,
		Season:       2021,
		PlayerName:   "Juan Soto",
	}, hits[0])
}

func TestParse_HeaderOnly(t *testing.T) {
	hits, err := Parse(strings.NewReader("play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n"), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestParse_KeepsNameWhitespaceAndCastsWholeYears(t *testing.T) {
	input := "play_id,ExitVelocity,HitDistance,LaunchAngle,Year,PlayerName\n" +
		"1,105.2,425,32,2023.0,Mike Trout\n" +
		"2,98.7,389,25, 2022 ,Mike Trout \n"

	hits, err := Parse(strings.NewReader(input), "cast.csv")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, 2023, hits[0].Season)
	assert.Equal(t, "Mike Trout", hits[0].PlayerName)
	assert.Equal(t, 2022, hits[1].Season)
	assert.Equal(t, "Mike Trout ", hits[1].PlayerName)
}
