package config

import (
	_ "embed"
)

//go:embed defaults/roadcross.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Title:           "Road Cross",
		HighscorePrefix: "Highscore: ",
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
			FPS:        60,
		},
		Road: RoadConfig{
			Width:  392,
			Height: 336,
			Rows:   4,
		},
		Player: PlayerConfig{
			Width:        44,
			Height:       84,
			BottomMargin: 75,
			Speed:        1,
		},
		Car: CarConfig{
			Width:          55,
			Height:         80,
			Speed:          1.2,
			SpeedRandomAdd: 0.4,
		},
		Spawn: SpawnConfig{
			Delay:     300,
			Chance:    25,
			MaxAtOnce: 2,
		},
		Speed: SpeedConfig{
			Initial: 5,
			Step:    0.05,
		},
		ScoreText: ScoreTextConfig{
			BottomDist:    20,
			BottomDistMax: 100,
			Speed:         0.2,
		},
		Death: DeathConfig{
			BlinkCycles:  6,
			BlinkDelayMS: 150,
		},
		Input: InputConfig{
			HoldMS: 300,
		},
		Colors: ColorConfig{
			Background:    "#000000",
			Road:          "245",
			Player:        "#5FAFFF",
			Car:           "#FFD75F",
			ScoreAddText:  "#64FF64",
			ScoreText:     "#FF0000",
			HighscoreText: "#C8C8C8",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
