// Package cli implements the embedmap command line using cobra.
//
// Commands reach the core only through driving ports, which are injected
// with SetServices or built lazily by a ServiceFactory once global flags
// have been parsed.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driving"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services holds the core services used by the commands.
type Services struct {
	Builder  driving.MapBuilder
	Settings driving.SettingsService
}

// ServiceFactory creates services for the given configuration directory.
// An empty directory selects the default location.
type ServiceFactory func(configDir string) (*Services, error)

var (
	mapBuilder      driving.MapBuilder
	settingsService driving.SettingsService
	serviceFactory  ServiceFactory
)

var rootCmd = &cobra.Command{
	Use:   "embedmap",
	Short: "Build embedding map documents for visualisation",
	Long: `embedmap converts a 2D point cloud of reduced embeddings and the
prompts they were generated from into a single JSON document for the
embedding map front end.

Coordinates are centred on the origin and scaled uniformly so that every
point fits the [-100, 100] display square.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("config-dir", "", "Configuration directory (default ~/.embedmap)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		mapBuilder, settingsService = nil, nil
		return
	}
	mapBuilder = s.Builder
	settingsService = s.Settings
}

// SetServiceFactory registers a factory invoked before every command runs.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	if serviceFactory != nil {
		configDir, err := cmd.Flags().GetString("config-dir")
		if err != nil {
			return fmt.Errorf("getting config-dir flag: %w", err)
		}
		svc, err := serviceFactory(configDir)
		if err != nil {
			return fmt.Errorf("initialising services: %w", err)
		}
		SetServices(svc)
	}

	configureLogging(cmd)
	return nil
}

// configureLogging applies persisted log settings, then flag overrides.
func configureLogging(cmd *cobra.Command) {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			logger.SetLevel(s.LogLevel)
			logger.SetJSON(s.LogFormat == domain.LogFormatJSON)
		}
	}

	if cmd.Flags().Changed("log-json") {
		if enabled, err := cmd.Flags().GetBool("log-json"); err == nil {
			logger.SetJSON(enabled)
		}
	}
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil {
		logger.SetVerbose(verbose)
	}
}
