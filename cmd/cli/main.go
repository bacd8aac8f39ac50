// Command cli reads a SimulationInput JSON from a file argument (or stdin),
// runs the motion profile, and writes the SimulationLog JSON to stdout.
//
// Settings come from an optional .env file, the config file named by
// UNITS_CONFIG, and UNITS_* environment variables.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cxd309/units/internal/config"
	"github.com/cxd309/units/internal/engine"
	"github.com/cxd309/units/internal/platform/logger"
)

func main() {
	// A missing .env file is normal; the environment alone is enough.
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Getenv("UNITS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log, os.Stderr)
	if envErr != nil {
		slog.Debug("no .env file loaded", "error", envErr)
	}

	out, err := cfg.Output.Units()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"distance_unit", out.Distance.String(),
		"time_unit", out.Time.String())

	var data []byte
	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	result, err := engine.RunJSON(string(data), engine.Options{DistanceUnit: out.Distance, TimeUnit: out.Time})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}
