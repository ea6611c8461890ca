package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/letterfall/common"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  common.Title,
		Usage: "type letters to drop them as physics tiles",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "show the debug overlay"},
			&cli.BoolFlag{Name: "wireframes", Usage: "draw physics shapes instead of tiles"},
			&cli.BoolFlag{Name: "watch", Usage: "reload prefabs/ when files change"},
			&cli.IntFlag{Name: "width", Value: common.DefaultWidth, Usage: "initial window width"},
			&cli.IntFlag{Name: "height", Value: common.DefaultHeight, Usage: "initial window height"},
			&cli.StringFlag{Name: "title", Value: common.Title, Usage: "window title"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	width, height := cmd.Int("width"), cmd.Int("height")
	if width <= 0 {
		width = common.DefaultWidth
	}
	if height <= 0 {
		height = common.DefaultHeight
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cmd.String("title"))

	game, err := NewGame(Options{
		Width:      float64(width),
		Height:     float64(height),
		Debug:      cmd.Bool("debug"),
		Wireframes: cmd.Bool("wireframes"),
		Watch:      cmd.Bool("watch"),
	})
	if err != nil {
		return err
	}
	defer game.Close()

	return ebiten.RunGame(game)
}
