// Command embedmap builds the JSON document behind the embedding map
// visualisation from 2D embeddings and their prompts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/embedmap/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/embedmap/internal/adapters/driven/jsonfile"
	"github.com/custodia-labs/embedmap/internal/adapters/driven/tensor"
	"github.com/custodia-labs/embedmap/internal/adapters/driven/textfile"
	"github.com/custodia-labs/embedmap/internal/adapters/driving/cli"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/core/services"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newServices wires the adapters into the core services.
func newServices(configDir string) (*cli.Services, error) {
	fs := afero.NewOsFs()

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStoreFs(fs, configDir)
	if err != nil {
		logger.Warn("Config unavailable, using defaults", "error", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	builder := services.NewMapBuilder(
		tensor.NewLoader(fs),
		textfile.NewLoader(fs),
		jsonfile.NewWriter(fs),
	)

	return &cli.Services{
		Builder:  builder,
		Settings: services.NewSettingsService(store),
	}, nil
}
