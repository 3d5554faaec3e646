package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diegok/duopong/internal/app"
	"github.com/diegok/duopong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  duopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>     YAML config file")
	fmt.Fprintln(os.Stderr, "  --env <file>        Env file with DUOPONG_* overrides (default: .env)")
	fmt.Fprintf(os.Stderr, "  --points <n>        Points to win (default: %d)\n", config.DefaultPoints)
	fmt.Fprintf(os.Stderr, "  --fps <n>           Frames per second (default: %d)\n", config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --log-level <lvl>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Player one: W / S     Player two: Up / Down")
	fmt.Fprintln(os.Stderr, "  Enter to start, q or Esc to quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  duopong --points 5")
	fmt.Fprintln(os.Stderr, "  duopong --config duopong.yaml --log duopong.log")
}
