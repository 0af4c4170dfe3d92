// nightmaze is a two-phase arcade game: survive a storm of whispered
// text for twenty seconds while your sight fades in, then find your way
// through the maze you can finally see.
//
// Usage:
//
//	nightmaze [flags]
//
// Flags:
//
//	--sheet <path>   - Sprite sheet config (default: data/character.yaml)
//	--font <path>    - Clock/bullet font file (default: fonts/clock.ttf)
//	--level <path>   - Level file; empty uses the built-in maze
//	--seed <value>   - RNG seed for reproducible runs (0 = time-based)
//	--debug          - Draw hitboxes and the goal zone
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/nightmaze/internal/game"
	ebitenrender "chosenoffset.com/nightmaze/internal/render/ebiten"
	"chosenoffset.com/nightmaze/internal/sprite"
)

const (
	clockFontSize  = 72
	bulletFontSize = 12
)

var (
	flagSheet string
	flagFont  string
	flagLevel string
	flagSeed  int64
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:           "nightmaze",
	Short:         "Dodge the whispers, then escape the maze",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagSheet, "sheet", "data/character.yaml", "Sprite sheet config")
	rootCmd.Flags().StringVar(&flagFont, "font", "fonts/clock.ttf", "Font file for clocks and bullets")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level file (empty = built-in maze)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw hitboxes and the goal zone")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	log.Info("loading sprite sheet", "config", flagSheet)
	sheetConfig, err := sprite.LoadSheetConfig(flagSheet)
	if err != nil {
		return err
	}
	sheetImg, err := loader.LoadImage(sheetConfig.Image)
	if err != nil {
		return err
	}
	sheet, err := sprite.NewSheet(sheetConfig, sheetImg)
	if err != nil {
		return fmt.Errorf("invalid sprite sheet layout: %w", err)
	}

	log.Info("loading font", "path", flagFont)
	clockFace, err := loader.LoadFont(flagFont, clockFontSize)
	if err != nil {
		return err
	}
	bulletFace, err := loader.LoadFont(flagFont, bulletFontSize)
	if err != nil {
		return err
	}

	level := game.DefaultLevel()
	if flagLevel != "" {
		log.Info("loading level", "path", flagLevel)
		level, err = game.LoadLevel(flagLevel)
		if err != nil {
			return err
		}
	}

	g := game.New(game.Config{
		Renderer:   renderer,
		Input:      inputMgr,
		Sprites:    sheet,
		ClockFace:  clockFace,
		BulletFace: bulletFace,
		Level:      level,
		Seed:       flagSeed,
		Debug:      flagDebug,
		Logger:     log.Default(),
	})

	engine.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	engine.SetWindowTitle("Nightmaze - WASD to move, Escape to quit")

	log.Info("starting game")
	return engine.RunGame(g)
}
