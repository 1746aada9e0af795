package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"datumsync/internal/engine"
	"datumsync/internal/logging"
)

func main() {
	runFile := flag.String("run", "run.yml", "run file listing conversion jobs")
	metricsPort := flag.Int("metrics-port", 0, "serve prometheus metrics on this port (0 = off)")
	logLevel := flag.String("log-level", "", "debug|info|warn|error (overrides DATUMSYNC_LOG_LEVEL)")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	_ = godotenv.Load() // .env is optional
	logging.InitFromEnv()
	if *logLevel != "" || *logJSON {
		logging.Configure(logging.Options{Level: *logLevel, JSON: *logJSON})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(engine.Config{
		RunFile:     *runFile,
		MetricsPort: *metricsPort,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
