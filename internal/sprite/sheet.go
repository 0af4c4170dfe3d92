// Package sprite slices a sprite sheet into named, timed animation cycles.
// The slicing is driven by a YAML table: one entry per sheet row giving the
// cycle's name, how many frames that row holds, and the per-frame interval.
package sprite

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/nightmaze/internal/render"
)

// DefaultInterval is the per-frame time used when a cycle omits its own.
const DefaultInterval = 0.1

// CycleConfig describes one row of the sheet.
type CycleConfig struct {
	Name     string  `yaml:"name"`     // Semantic name (e.g., "stand", "sprint")
	Frames   int     `yaml:"frames"`   // Number of frames in this row
	Interval float64 `yaml:"interval"` // Seconds per frame; 0 means DefaultInterval
}

// SheetConfig is the YAML configuration for a sprite sheet.
type SheetConfig struct {
	Image       string        `yaml:"image"`        // Path to the sheet image file
	FrameWidth  int           `yaml:"frame_width"`  // Width of each frame in pixels
	FrameHeight int           `yaml:"frame_height"` // Height of each frame in pixels
	Cycles      []CycleConfig `yaml:"cycles"`       // One entry per sheet row, top to bottom
}

// LoadSheetConfig reads and validates a sheet configuration file.
func LoadSheetConfig(path string) (*SheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", path, err)
	}

	var config SheetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config %s: %w", path, err)
	}

	if config.FrameWidth <= 0 || config.FrameHeight <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions: %dx%d", config.FrameWidth, config.FrameHeight)
	}
	if config.Image == "" {
		return nil, fmt.Errorf("image is required in sheet config %s", path)
	}
	if len(config.Cycles) == 0 {
		return nil, fmt.Errorf("no cycles defined in sheet config %s", path)
	}

	for i := range config.Cycles {
		c := &config.Cycles[i]
		if c.Name == "" {
			return nil, fmt.Errorf("cycle %d has no name in %s", i, path)
		}
		if c.Frames <= 0 {
			return nil, fmt.Errorf("cycle %q has %d frames in %s", c.Name, c.Frames, path)
		}
		if c.Interval <= 0 {
			c.Interval = DefaultInterval
		}
	}

	return &config, nil
}

// Sheet is a loaded sprite sheet: animation cycles keyed by semantic name.
type Sheet struct {
	CyclesByName map[string]*Cycle
}

// NewSheet slices img into cycles according to the configuration. Rows map
// to cycles top to bottom. A row or frame count that exceeds the image's
// actual dimensions is a construction error, not a runtime surprise.
func NewSheet(config *SheetConfig, img render.Image) (*Sheet, error) {
	imgW, imgH := img.Size()

	if len(config.Cycles)*config.FrameHeight > imgH {
		return nil, fmt.Errorf("sheet has %d rows of %dpx but image is only %dpx tall",
			len(config.Cycles), config.FrameHeight, imgH)
	}

	cycles := make(map[string]*Cycle, len(config.Cycles))
	for i, cc := range config.Cycles {
		if cc.Frames*config.FrameWidth > imgW {
			return nil, fmt.Errorf("cycle %q wants %d frames of %dpx but image is only %dpx wide",
				cc.Name, cc.Frames, config.FrameWidth, imgW)
		}

		frames := make([]render.Image, cc.Frames)
		for j := 0; j < cc.Frames; j++ {
			rect := image.Rect(
				j*config.FrameWidth,
				i*config.FrameHeight,
				(j+1)*config.FrameWidth,
				(i+1)*config.FrameHeight,
			)
			frames[j] = img.SubImage(rect)
		}

		cycles[cc.Name] = NewCycle(frames, cc.Interval)
	}

	return &Sheet{CyclesByName: cycles}, nil
}

// Cycle returns a cycle by name.
func (s *Sheet) Cycle(name string) (*Cycle, bool) {
	c, ok := s.CyclesByName[name]
	return c, ok
}

// Advance ticks every cycle's frame timer by dt seconds.
func (s *Sheet) Advance(dt float64) {
	for _, c := range s.CyclesByName {
		c.Advance(dt)
	}
}
