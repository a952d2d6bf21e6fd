package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/codeauth/authadapter"
	"github.com/blogem/codeauth/config"
	"github.com/blogem/codeauth/database"
	"github.com/blogem/codeauth/logger"
	"github.com/blogem/codeauth/metrics"
	"github.com/blogem/codeauth/repositories"
	"github.com/blogem/codeauth/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the configured providers to the audit store.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	repos    *repositories.Repositories
	srvs     *services.Services
	registry *prometheus.Registry
	log      *zap.Logger
}

// skipProviders marks commands that only read the audit store.
const skipProviders = "skip-providers"

func setup(ctx context.Context, configPath string, envFiles []string, withProviders bool) (*app, error) {
	cfg, err := config.Load(configPath, envFiles...)
	if err != nil {
		return nil, err
	}

	log := logger.Init(cfg.Log)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		db:       db,
		repos:    repositories.NewRepositories(db),
		registry: prometheus.NewRegistry(),
		log:      log,
	}
	if !withProviders {
		return a, nil
	}

	providers, err := services.BuildRegistry(ctx, cfg.Providers, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("providers ready", zap.Strings("providers", providers.Names()))

	a.srvs = services.NewServices(providers, a.repos, metrics.New(a.registry))
	return a, nil
}

// Close writes the metrics textfile when requested and releases the database.
func (a *app) Close(metricsFile string) {
	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, a.registry); err != nil {
			a.log.Warn("failed to write metrics", logger.Err(err))
		}
	}
	a.log.Sync()
	a.db.Close()
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		envFiles    []string
		metricsFile string
		timeout     time.Duration
		provider    string
		a           *app
	)

	root := &cobra.Command{
		Use:           "codeauth",
		Short:         "Verify third-party identities against configured providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			_, skip := cmd.Annotations[skipProviders]
			a, err = setup(cmd.Context(), configPath, envFiles, !skip)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "providers.yaml", "provider configuration file")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before the config (default .env)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "deadline for provider round-trips")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")

	// run reads auth data from stdin, calls fn and prints the identity.
	run := func(fn func(ctx context.Context, srvs *services.Services, authData authadapter.AuthData) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer a.Close(metricsFile)

			authData, err := readAuthData(cmd.InOrStdin())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			out, err := fn(ctx, a.srvs, authData)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		}
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify auth data from stdin for sign-in and print the identity",
		RunE: run(func(ctx context.Context, srvs *services.Services, d authadapter.AuthData) (any, error) {
			res, err := srvs.Auth.Login(ctx, provider, d)
			return resultView(res), err
		}),
	}

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Verify auth data from stdin for first-time linking",
		RunE: run(func(ctx context.Context, srvs *services.Services, d authadapter.AuthData) (any, error) {
			res, err := srvs.Auth.SignUp(ctx, provider, d)
			return resultView(res), err
		}),
	}

	var storedPath string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Re-verify auth data from stdin against a stored record",
		RunE: run(func(ctx context.Context, srvs *services.Services, d authadapter.AuthData) (any, error) {
			stored, err := readAuthDataFile(storedPath)
			if err != nil {
				return nil, err
			}
			res, err := srvs.Auth.Update(ctx, provider, stored, d)
			return resultView(res), err
		}),
	}
	updateCmd.Flags().StringVar(&storedPath, "stored", "", "file holding the stored auth data JSON")
	updateCmd.MarkFlagRequired("stored")

	readbackCmd := &cobra.Command{
		Use:   "readback",
		Short: "Print what a client may see of stored auth data from stdin",
		RunE: run(func(ctx context.Context, srvs *services.Services, d authadapter.AuthData) (any, error) {
			return srvs.Auth.ReadBack(ctx, provider, d)
		}),
	}

	for _, c := range []*cobra.Command{loginCmd, signupCmd, updateCmd, readbackCmd} {
		c.Flags().StringVarP(&provider, "provider", "p", "", "provider name from the config file")
		c.MarkFlagRequired("provider")
		root.AddCommand(c)
	}

	var limit int
	attemptsCmd := &cobra.Command{
		Use:         "attempts",
		Short:       "List recent audited attempts for a provider",
		Annotations: map[string]string{skipProviders: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.Close(metricsFile)

			attempts, err := a.repos.Audit.ListByProvider(provider, limit)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return printJSON(cmd.OutOrStdout(), attempts)
		},
	}
	attemptsCmd.Flags().StringVarP(&provider, "provider", "p", "", "provider name from the config file")
	attemptsCmd.Flags().IntVar(&limit, "limit", 20, "maximum attempts to list")
	attemptsCmd.MarkFlagRequired("provider")
	root.AddCommand(attemptsCmd)

	return root
}

// resultView is the printed form of a lifecycle result: the identity and
// the record to store.
func resultView(res services.Result) map[string]any {
	return map[string]any{
		"identity":  res.Identity,
		"authData":  res.AuthData,
		"unchanged": res.Unchanged,
	}
}

func readAuthData(r io.Reader) (authadapter.AuthData, error) {
	var d authadapter.AuthData
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return d, fmt.Errorf("failed to decode auth data: %w", err)
	}
	return d, nil
}

func readAuthDataFile(path string) (authadapter.AuthData, error) {
	f, err := os.Open(path)
	if err != nil {
		return authadapter.AuthData{}, err
	}
	defer f.Close()
	return readAuthData(f)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
