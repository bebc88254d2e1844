package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/embedmap/internal/adapters/driving/styles"
	"github.com/custodia-labs/embedmap/internal/adapters/driving/watch"
	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/logger"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the embedding map document",
	Long: `Load the 2D embeddings and prompts, normalise the coordinates and write
the JSON document consumed by the embedding map front end.

Paths default to the configured values (see "embedmap config show").
Relative paths are resolved against --dir when it is given.

Supported embedding formats: .pt/.pth (torch.save), .safetensors, .npy.

Examples:
  embedmap build
  embedmap build -e coords.npy -p prompts.txt -o web/data.json
  embedmap build -C ./viz --watch`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("embeddings", "e", "", "N×2 embedding file")
	buildCmd.Flags().StringP("prompts", "p", "", "Prompts file, one per line")
	buildCmd.Flags().StringP("output", "o", "", "Output JSON document")
	buildCmd.Flags().StringP("dir", "C", "", "Resolve relative paths against this directory")
	buildCmd.Flags().BoolP("watch", "w", false, "Rebuild whenever an input file changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if mapBuilder == nil {
		return errors.New("map builder not configured")
	}

	req, err := resolveRequest(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := stylesFor(out)

	watchMode, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	if watchMode {
		cmd.Printf("Watching %s and %s for changes (Ctrl+C to stop)\n", req.EmbeddingsPath, req.PromptsPath)
		w := watch.New(mapBuilder, req, watch.WithResultFunc(func(result *domain.BuildResult, err error) {
			if err != nil {
				logger.Error("Build failed", "error", err)
				return
			}
			writeSummary(out, result, st)
		}))
		return w.Run(cmd.Context())
	}

	result, err := mapBuilder.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	writeSummary(out, result, st)
	return nil
}

// resolveRequest combines configured defaults with flag overrides.
func resolveRequest(cmd *cobra.Command) (domain.BuildRequest, error) {
	defaults := domain.DefaultSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return domain.BuildRequest{}, fmt.Errorf("failed to get settings: %w", err)
		}
		defaults = *s
	}

	req := domain.BuildRequest{
		EmbeddingsPath: defaults.EmbeddingsPath,
		PromptsPath:    defaults.PromptsPath,
		OutputPath:     defaults.OutputPath,
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"embeddings", &req.EmbeddingsPath},
		{"prompts", &req.PromptsPath},
		{"output", &req.OutputPath},
	}
	for _, o := range overrides {
		v, err := cmd.Flags().GetString(o.flag)
		if err != nil {
			return domain.BuildRequest{}, fmt.Errorf("getting %s flag: %w", o.flag, err)
		}
		if v != "" {
			*o.target = v
		}
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return domain.BuildRequest{}, fmt.Errorf("getting dir flag: %w", err)
	}
	if dir != "" {
		req.EmbeddingsPath = resolvePath(dir, req.EmbeddingsPath)
		req.PromptsPath = resolvePath(dir, req.PromptsPath)
		req.OutputPath = resolvePath(dir, req.OutputPath)
	}

	return req, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// stylesFor returns coloured styles when w is a terminal.
func stylesFor(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

// writeSummary prints the statistics of a completed build.
func writeSummary(w io.Writer, r *domain.BuildResult, st *styles.Styles) {
	b := r.Bounds
	fmt.Fprintf(w, "\n%s Created %s\n", st.Success.Render("Success!"), st.Value.Render(r.OutputPath))
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Points:"), st.Value.Render(fmt.Sprint(r.Points)))
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Bounds:"), st.Value.Render(fmt.Sprintf(
		"X[%.2f, %.2f], Y[%.2f, %.2f]", float64(b.MinX), float64(b.MaxX), float64(b.MinY), float64(b.MaxY))))
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("File size:"), st.Value.Render(fmt.Sprintf("%.2f MB", r.SizeMB())))
}
