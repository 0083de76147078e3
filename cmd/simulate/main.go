// Command simulate runs a platform projection from a scenario file and
// prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"treasury_backend/internal/feature/projection/adapters"
	"treasury_backend/internal/feature/projection/transport/http/dto"
	"treasury_backend/internal/feature/projection/usecase"
)

func main() {
	scenarioPath := flag.String("scenario", "scenario.yaml", "path to a YAML, JSON or TOML scenario file")
	monthly := flag.Bool("monthly", false, "include the monthly treasury table")
	flag.Parse()

	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	s, err := adapters.LoadScenario(*scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "path", *scenarioPath, "error", err)
		os.Exit(1)
	}

	uc := usecase.NewProjectionUsecase(adapters.NewEngineProjector())
	p, err := uc.ProjectPlatform(context.Background(), s)
	if err != nil {
		slog.Error("projection failed", "error", err)
		os.Exit(1)
	}

	res := dto.NewPlatformProjectionRes(p)
	var out any = res.Summary
	if *monthly {
		out = res
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("failed to write result", "error", err)
		os.Exit(1)
	}
}
