package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cosmicheat/common"
)

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML file (default: prefabs/tuning.yaml, then the built-in copy)")
	watch := flag.Bool("watch", false, "reload tuning when the file changes")
	debug := flag.Bool("debug", false, "log spawns, kills and state changes")
	mute := flag.Bool("mute", false, "start with sound off (M toggles)")
	scale := flag.Float64("scale", 1, "window scale")
	flag.Parse()

	if *scale <= 0 {
		*scale = 1
	}
	ebiten.SetWindowSize(int(common.ArenaWidth**scale), int(common.ArenaHeight**scale))
	ebiten.SetWindowTitle("Cosmic Heat")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Config{
		TuningPath: *tuningPath,
		Watch:      *watch,
		Debug:      *debug,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
