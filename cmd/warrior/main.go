//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SlavicJan/way-of-warrior/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		assetsDir   string
		controls    string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 picks one from the clock)")
	flag.StringVar(&assetsDir, "assets", "assets", "directory holding UI textures")
	flag.StringVar(&controls, "controls", gui.ControlsFileName, "key binding file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Way of the Warrior %s (%s) %s\n", version, commit, date)
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:      version,
		Seed:         seed,
		AssetsDir:    assetsDir,
		ControlsPath: controls,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
