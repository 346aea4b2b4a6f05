package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlgen-dev/htmlgen/internal/config"
	"github.com/htmlgen-dev/htmlgen/internal/showcase"
	"github.com/htmlgen-dev/htmlgen/pkg/html"
)

func buildCmd() *cobra.Command {
	var (
		output string
		pretty bool
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render pages to static files",
		Long: `Render the showcase pages to static HTML files.

Examples:
  htmlgen build
  htmlgen build --output=dist
  htmlgen build --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, pretty, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from htmlgen.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the generated HTML")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(output string, pretty, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if output != "" {
		cfg.Output = output
	}

	start := time.Now()

	if clean {
		info("Cleaning %s/", cfg.Output)
		if err := os.RemoveAll(cfg.Output); err != nil {
			return fmt.Errorf("cleaning output directory: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	renderer := html.NewRenderer(html.RendererConfig{Pretty: pretty})

	var total int64
	for _, entry := range showcase.Pages() {
		page := entry.Page()
		if err := page.Err(); err != nil {
			return fmt.Errorf("building %s: %w", entry.Name, err)
		}
		out := renderer.RenderToString(page)
		dest := filepath.Join(cfg.Output, entry.File)
		if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		total += int64(len(out))
		info("%s  (%s)", dest, formatBytes(int64(len(out))))
	}

	fmt.Println()
	success("Built %d pages (%s) in %s", len(showcase.Pages()), formatBytes(total), time.Since(start).Round(time.Millisecond))

	return nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
