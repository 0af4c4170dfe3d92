package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/nightmaze/internal/geom"
)

// Level is a maze layout: the wall rectangles and the goal zone.
type Level struct {
	Walls []geom.Rect
	Goal  geom.Rect
}

// rectConfig is the YAML shape of a rectangle in a level file.
type rectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// levelConfig is the YAML shape of a level file.
type levelConfig struct {
	Name  string       `yaml:"name"`
	Walls []rectConfig `yaml:"walls"`
	Goal  rectConfig   `yaml:"goal"`
}

// LoadLevel loads a maze layout from a YAML file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var config levelConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	if config.Goal.W <= 0 || config.Goal.H <= 0 {
		return nil, fmt.Errorf("level %s has a degenerate goal zone: %+v", path, config.Goal)
	}
	if len(config.Walls) == 0 {
		return nil, fmt.Errorf("level %s has no walls", path)
	}

	level := &Level{
		Goal: geom.NewRect(config.Goal.X, config.Goal.Y, config.Goal.W, config.Goal.H),
	}
	for i, w := range config.Walls {
		if w.W <= 0 || w.H <= 0 {
			return nil, fmt.Errorf("level %s wall %d is degenerate: %+v", path, i, w)
		}
		level.Walls = append(level.Walls, geom.NewRect(w.X, w.Y, w.W, w.H))
	}

	return level, nil
}

// DefaultLevel returns the built-in maze.
func DefaultLevel() *Level {
	return &Level{
		Goal: geom.NewRect(600, 520, 80, 140),
		Walls: []geom.Rect{
			geom.NewRect(0, 100, 200, 20),
			geom.NewRect(200, 100, 20, 100),
			geom.NewRect(120, 200, 100, 20),
			geom.NewRect(300, 100, 200, 20),
			geom.NewRect(300, 180, 200, 20),
			geom.NewRect(300, 180, 20, 120),
			geom.NewRect(500, 100, 20, 100),
			geom.NewRect(600, 100, 200, 20),
			geom.NewRect(40, 100, 20, 120),
			geom.NewRect(0, 280, 220, 20),
			geom.NewRect(100, 380, 220, 20),
			geom.NewRect(100, 380, 20, 100),
			geom.NewRect(100, 480, 100, 20),
			geom.NewRect(0, 380, 40, 20),
			geom.NewRect(0, 450, 40, 20),
			geom.NewRect(100, 560, 20, 100),
			geom.NewRect(100, 560, 100, 20),
			geom.NewRect(100, 560, 100, 20),
			geom.NewRect(300, 400, 20, 120),
			geom.NewRect(380, 480, 20, 120),
			geom.NewRect(460, 380, 20, 220),
			geom.NewRect(300, 380, 180, 20),
			geom.NewRect(300, 280, 180, 20),
			geom.NewRect(500, 180, 240, 20),
			geom.NewRect(500, 180, 240, 20),
			geom.NewRect(580, 180, 20, 140),
			geom.NewRect(580, 180, 20, 180),
			geom.NewRect(680, 260, 140, 20),
			geom.NewRect(580, 340, 100, 20),
			geom.NewRect(580, 440, 100, 20),
			geom.NewRect(580, 440, 20, 180),
			geom.NewRect(680, 340, 20, 120),
			geom.NewRect(680, 520, 20, 140),
		},
	}
}
