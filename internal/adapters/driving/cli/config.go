package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and change the default paths and log settings used by build.

Keys:
  paths.embeddings - Embedding file (.pt, .pth, .safetensors, .npy)
  paths.prompts    - Prompts file, one per line
  paths.output     - Output JSON document
  log.level        - debug, info, warn or error
  log.format       - text or json`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	for _, key := range settingsService.Keys() {
		cmd.Printf("  %-17s %s\n", key, settingValue(settings, key))
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", settingsService.Path())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println(settingsService.Path())
	return nil
}

// settingValue returns the display value of a setting key.
func settingValue(s *domain.Settings, key string) string {
	switch key {
	case "paths.embeddings":
		return s.EmbeddingsPath
	case "paths.prompts":
		return s.PromptsPath
	case "paths.output":
		return s.OutputPath
	case "log.level":
		return s.LogLevel
	case "log.format":
		return string(s.LogFormat)
	default:
		return ""
	}
}
