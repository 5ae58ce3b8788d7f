package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"medication-reminder/internal/adapters/auth/jwtauth"
	"medication-reminder/internal/adapters/storage/postgres"
	"medication-reminder/internal/adapters/textgen/openai"
	"medication-reminder/internal/config"
	"medication-reminder/internal/domain/subscriptions"
	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/auth"
	"medication-reminder/internal/router"

	"github.com/spf13/cobra"
)

// @title Medication Reminder API
// @version 1.0
// @description Medicaciones, alertas de toma y stock, mediciones de presión y glucosa, estimación de reposición.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "medication-reminder",
		Short: "Medication reminder API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(planCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server and the reminders ticker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg, log)
		},
	}
}

func runServer(cfg *config.Config, log logger.Logger) error {
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repos, closeStore, err := openRepositories(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close storage", map[string]any{"err": err})
		}
	}()

	opts := router.Options{
		Repos:           repos,
		Logger:          log,
		DefaultLocation: loc,
		Subscriptions: subscriptions.Options{
			PremiumEmails: cfg.PremiumEmails,
			AllowAll:      cfg.AllowAllCapabilities,
		},
		RefillRatePerMin: cfg.RefillRatePerMin,
		ReminderInterval: cfg.ReminderInterval,
	}

	// Sin secreto => modo dev (headers X-Debug-*). Validate ya exige el
	// secreto fuera de dev.
	if secret := strings.TrimSpace(cfg.AuthJWTSecret); secret != "" {
		opts.AuthVerifier = jwtauth.NewVerifier(jwtauth.Config{
			Secret:   secret,
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
		})
	} else {
		log.Warn("auth verifier disabled: X-Debug-User-ID headers are trusted", nil)
	}

	if cfg.LLMEnabled() {
		gen, err := openai.New(openai.Config{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout,
		}, log.With(map[string]any{"component": "textgen"}))
		if err != nil {
			return err
		}
		opts.TextGen = gen
	} else {
		log.Info("text generation not configured: refill estimates use the built-in recommendation", nil)
	}

	app := router.New(opts)
	if err := app.Reminders.Start(); err != nil {
		return err
	}
	defer app.Reminders.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"env":     cfg.Env,
			"storage": cfg.StorageDriver,
			"tz":      loc.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-quit:
	}

	log.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres documents table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.DBDSN) == "" {
				return errors.New("DB_DSN is required")
			}

			db, err := postgres.Open(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a signed access token (AUTH_JWT_SECRET) for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.AuthJWTSecret) == "" {
				return jwtauth.ErrNotConfigured
			}

			email, _ := cmd.Flags().GetString("email")
			anonymous, _ := cmd.Flags().GetBool("anonymous")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			v := jwtauth.NewVerifier(jwtauth.Config{
				Secret:   cfg.AuthJWTSecret,
				Issuer:   cfg.AuthIssuer,
				Audience: cfg.AuthAudience,
			})
			tok, err := v.Issue(auth.Claims{UserID: args[0], Email: email, Anonymous: anonymous}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Email claim (PREMIUM_EMAILS match)")
	cmd.Flags().Bool("anonymous", false, "Mark the user as anonymous (demo seeding)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage user subscription plans",
	}

	setCmd := &cobra.Command{
		Use:   "set <user-id> <Basic|Premium>",
		Short: "Change a user's plan (persistent storage only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver == config.StorageMemory {
				return errors.New("plan set requires STORAGE_DRIVER=postgres or badger")
			}

			repos, closeStore, err := openRepositories(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := subscriptions.NewService(repos.Subscriptions, subscriptions.Options{})
			sub, err := svc.SetPlan(cmd.Context(), args[0], subscriptions.Type(args[1]))
			if err != nil {
				return err
			}
			log.Info("plan updated", map[string]any{
				"user_id":       args[0],
				"type":          string(sub.Type),
				"max_medicines": sub.MaxMedicines,
			})
			return nil
		},
	}
	cmd.AddCommand(setCmd)
	return cmd
}
