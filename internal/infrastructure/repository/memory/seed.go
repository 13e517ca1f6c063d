package memory

import "github.com/riskibarqy/batting-insights/internal/domain/battedball"

// SeedHits is the sample batted-ball set used for local runs and tests.
func SeedHits() []battedball.Hit {
	return []battedball.Hit{
		{ID: "1", ExitVelocity: 105.2, HitDistance: 425, LaunchAngle: 32, Season: 2023, PlayerName: "Mike Trout"},
		{ID: "2", ExitVelocity: 98.7, HitDistance: 389, LaunchAngle: 25, Season: 2023, PlayerName: "Mike Trout"},
		{ID: "3", ExitVelocity: 110.5, HitDistance: 450, LaunchAngle: 28, Season: 2023, PlayerName: "Mike Trout"},
		{ID: "4", ExitVelocity: 92.3, HitDistance: 350, LaunchAngle: 18, Season: 2023, PlayerName: "Mike Trout"},
		{ID: "5", ExitVelocity: 107.8, HitDistance: 432, LaunchAngle: 30, Season: 2023, PlayerName: "Shohei Ohtani"},
		{ID: "6", ExitVelocity: 112.4, HitDistance: 465, LaunchAngle: 35, Season: 2023, PlayerName: "Shohei Ohtani"},
		{ID: "7", ExitVelocity: 103.9, HitDistance: 410, LaunchAngle: 27, Season: 2023, PlayerName: "Shohei Ohtani"},
		{ID: "8", ExitVelocity: 95.6, HitDistance: 375, LaunchAngle: 22, Season: 2023, PlayerName: "Shohei Ohtani"},
		{ID: "9", ExitVelocity: 108.3, HitDistance: 445, LaunchAngle: 31, Season: 2022, PlayerName: "Mike Trout"},
		{ID: "10", ExitVelocity: 99.5, HitDistance: 392, LaunchAngle: 26, Season: 2022, PlayerName: "Mike Trout"},
		{ID: "11", ExitVelocity: 106.7, HitDistance: 428, LaunchAngle: 29, Season: 2022, PlayerName: "Mike Trout"},
		{ID: "12", ExitVelocity: 93.8, HitDistance: 365, LaunchAngle: 20, Season: 2022, PlayerName: "Mike Trout"},
		{ID: "13", ExitVelocity: 109.1, HitDistance: 455, LaunchAngle: 33, Season: 2022, PlayerName: "Shohei Ohtani"},
		{ID: "14", ExitVelocity: 111.8, HitDistance: 460, LaunchAngle: 34, Season: 2022, PlayerName: "Shohei Ohtani"},
		{ID: "15", ExitVelocity: 102.4, HitDistance: 405, LaunchAngle: 28, Season: 2022, PlayerName: "Shohei Ohtani"},
		{ID: "16", ExitVelocity: 97.2, HitDistance: 382, LaunchAngle: 24, Season: 2022, PlayerName: "Shohei Ohtani"},
	}
}
