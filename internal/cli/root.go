package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/pingwatch/internal/config"
	"github.com/hamed0406/pingwatch/internal/httpapi"
	"github.com/hamed0406/pingwatch/internal/logging"
	"github.com/hamed0406/pingwatch/internal/probe"
	"github.com/hamed0406/pingwatch/internal/repo"
	"github.com/hamed0406/pingwatch/internal/repo/memory"
	"github.com/hamed0406/pingwatch/internal/repo/sqlite"
	"github.com/hamed0406/pingwatch/internal/runner"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pingwatch <target>",
	Short: "Ping a target repeatedly and report success/failure counts",
	Long: `Ping a specified target with options for repeat count, verbosity
level, optional logging to file, probe history, and a live status API.

Reachability is decided by parsing the OS ping output, not by the ping
binary's exit code. An all-failure run still exits zero; only setup
faults (bad flags, unopenable log file or database) are fatal.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Defaults()
		cfg.Target = args[0]
		cfg.Count, _ = cmd.Flags().GetInt("count")
		cfg.Delay, _ = cmd.Flags().GetInt("sleep")
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
		cfg.LogFile, _ = cmd.Flags().GetString("file")
		cfg.Overwrite, _ = cmd.Flags().GetBool("overwrite")
		cfg.Append, _ = cmd.Flags().GetBool("append")
		if cmd.Flags().Changed("serve") {
			cfg.ServeAddr, _ = cmd.Flags().GetString("serve")
		}
		if cmd.Flags().Changed("db") {
			cfg.DBPath, _ = cmd.Flags().GetString("db")
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(logging.Options{
		Verbose:   cfg.Verbose,
		Debug:     cfg.Debug,
		File:      cfg.LogFile,
		Overwrite: cfg.Overwrite,
		Append:    cfg.Append,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	var store repo.ProbeStore = memory.New()
	if cfg.DBPath != "" {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer db.Close()
		store = db
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	r := runner.New(
		logger,
		probe.NewPingChecker(),
		store,
		cfg.Target,
		cfg.Count,
		time.Duration(cfg.Delay)*time.Second,
	)

	g, gctx := errgroup.WithContext(ctx)

	var srv *http.Server
	if cfg.ServeAddr != "" {
		api := httpapi.NewServer(logger, store)
		srv = &http.Server{Addr: cfg.ServeAddr, Handler: api.Router()}
		g.Go(func() error {
			logger.Info("api_listen", zap.String("addr", cfg.ServeAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		r.Run(gctx)
		if srv != nil {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}
		return nil
	})

	return g.Wait()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntP("count", "c", 3, "number of times to ping; 0 for infinite")
	rootCmd.Flags().IntP("sleep", "s", 1, "seconds to wait between pings")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.Flags().StringP("file", "f", "", "path to the log file")
	rootCmd.Flags().BoolP("overwrite", "o", false, "overwrite the log file if it exists")
	rootCmd.Flags().BoolP("append", "a", false, "append to the log file if it exists")
	rootCmd.Flags().String("serve", "", "bind address for the live status API")
	rootCmd.Flags().String("db", "", "sqlite path for probe history")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pingwatch %s\n", version)
	},
}
