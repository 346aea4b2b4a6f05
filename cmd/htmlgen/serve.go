package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/htmlgen-dev/htmlgen/internal/config"
	"github.com/htmlgen-dev/htmlgen/internal/showcase"
	"github.com/htmlgen-dev/htmlgen/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port   int
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server for the showcase pages.

Pages render on every request, so edits show up on refresh. With
reload enabled the server pushes a refresh to connected browsers.

Examples:
  htmlgen serve
  htmlgen serve --port=8080
  htmlgen serve --host=0.0.0.0 --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, pretty)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlgen.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlgen.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the served HTML")

	return cmd
}

func runServe(port int, host string, pretty bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}
	if pretty {
		cfg.Dev.Pretty = true
	}

	srv := server.New(&server.Config{
		Addr:         cfg.DevAddr(),
		Pretty:       cfg.Dev.Pretty,
		EnableReload: cfg.Dev.Reload,
	})

	for _, entry := range showcase.Pages() {
		srv.HandlePage(entry.Path, entry.Page)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	name := cfg.Name
	if name == "" {
		name = "showcase"
	}
	success("Serving %s on http://%s", name, cfg.DevAddr())
	for _, entry := range showcase.Pages() {
		info("http://%s%s", cfg.DevAddr(), entry.Path)
	}
	fmt.Println()

	return srv.Start(ctx)
}
