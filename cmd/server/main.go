package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/FreePeak/couchbase-mcp-server/internal/config"
	"github.com/FreePeak/couchbase-mcp-server/internal/delivery/mcp"
	"github.com/FreePeak/couchbase-mcp-server/internal/infrastructure/database"
	"github.com/FreePeak/couchbase-mcp-server/internal/logger"
	"github.com/FreePeak/couchbase-mcp-server/internal/transport"
	"github.com/FreePeak/couchbase-mcp-server/internal/usecase"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

func main() {
	// Parse command line flags
	envFile := flag.String("env-file", ".env", "Path to a dotenv file with connection settings")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Load configuration
	envErr := config.LoadEnvFile(*envFile)
	cfg := config.LoadConfig()
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Initialize logger
	logger.Initialize(cfg.LogLevel)
	if envErr != nil {
		logger.Warn("%v", envErr)
	}

	if err := cfg.Validate(); err != nil {
		var missing *config.MissingEnvError
		if errors.As(err, &missing) {
			logger.Error("Error: Missing Couchbase connection environment variables: %s", strings.Join(missing.Vars, ", "))
			logger.Error("Please set COUCHBASE_CONNECTION_STRING, COUCHBASE_USERNAME, and COUCHBASE_PASSWORD.")
		} else {
			logger.Error("Error: %v", err)
		}
		exit(1)
	}

	// Exit immediately on SIGINT/SIGTERM; in-flight queries are not drained
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		sig := <-stop
		logger.Info("Received %s. Exiting.", signalName(sig))
		exit(0)
	}()

	// Wire the query gateway behind the MCP tool
	queryUseCase := usecase.NewQueryUseCase(database.NewFactory(&cfg.Couchbase))
	mcpServer := mcp.NewServer(queryUseCase, version)

	stdioTransport := transport.NewStdioTransport(mcpServer, os.Stdin, os.Stdout)
	if err := stdioTransport.Start(context.Background()); err != nil {
		logger.Error("Error connecting MCP server: %v", err)
		exit(1)
	}

	exit(0)
}

// exit logs the exit code and terminates the process
func exit(code int) {
	logger.Info("Process exiting with code: %d", code)
	os.Exit(code)
}

// signalName returns the conventional name for the signals we handle
func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return sig.String()
	}
}
