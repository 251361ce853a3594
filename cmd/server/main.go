// Package main implements the entry point for the taskboard API server,
// which serves user accounts and their projects and tasks over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

// options holds the parsed command line.
type options struct {
	migrate string
	envFile string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, "|")+")")
	fs.StringVar(&opts.envFile, "env-file", ".env", "path to a dotenv file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && !isMigrationCommand(opts.migrate) {
		return options{}, fmt.Errorf("unknown migration command %q", opts.migrate)
	}
	return opts, nil
}

func isMigrationCommand(cmd string) bool {
	for _, c := range postgres.MigrationCommands {
		if c == cmd {
			return true
		}
	}
	return false
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either runs the
// requested migration command or serves HTTP until shutdown.
func run(ctx context.Context, opts options) error {
	cfg, err := loadAppConfig(opts.envFile)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("error closing database connection", "error", err)
			}
		}()
		return postgres.Migrate(ctx, db, opts.migrate, logger)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
