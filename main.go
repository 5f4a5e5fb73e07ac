package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"baseconv-tool/internal/cli"
	"baseconv-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		a := app.NewWithID("com.baseconv-tool.gui")
		win := ui.BuildMainWindow(a)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := runCLI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(cfg *cli.RunnerConfig) error {
	result, err := cli.Convert(*cfg)
	if err != nil {
		return err
	}

	cli.PrintConversion(result, cfg.ShowPrefix)
	return nil
}
