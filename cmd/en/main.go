package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jultty/en/internal/api"
	"github.com/jultty/en/internal/config"
	"github.com/jultty/en/internal/graph"
	"github.com/spf13/cobra"
)

var (
	hostname  string
	port      int
	graphPath string
	staticDir string
	logFormat string
	noWatch   bool

	rootCmd = &cobra.Command{
		Use:           "en",
		Short:         "Serve a wiki of linked nodes",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the wiki server (default)",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&hostname, "hostname", "H", "", "address to listen on (env EN_HOSTNAME)")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "port to listen on (env EN_PORT)")
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "", "graph file, .toml, .json or .yaml (env EN_GRAPH)")
	rootCmd.PersistentFlags().StringVar(&staticDir, "static", "", "directory served under /static (env EN_STATIC_DIR)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format, json or text (env LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&noWatch, "no-watch", false, "do not reload the graph when its file changes")

	rootCmd.AddCommand(serveCmd, renderCmd, graphCmd)
}

// loadConfig reads the environment and applies any flags given on the
// command line over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("hostname") {
		cfg.Hostname = hostname
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("graph") {
		cfg.GraphPath = graphPath
	}
	if flags.Changed("static") {
		cfg.StaticDir = staticDir
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if noWatch {
		cfg.WatchGraph = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := graph.Open(cfg.GraphPath, log)
	if err != nil {
		log.Warn("serving empty graph", "path", cfg.GraphPath)
	}
	if cfg.WatchGraph {
		if err := store.Watch(ctx); err != nil {
			log.Warn("graph watch disabled", "error", err)
		}
	}

	srv, err := api.NewServer(store, log, cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		store.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting en", "address", cfg.Address(), "graph", cfg.GraphPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
