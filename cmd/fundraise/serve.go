package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/utaipei/fundraising/internal/api"
	"github.com/utaipei/fundraising/locales"
	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/clientip"
	"github.com/utaipei/fundraising/pkg/config"
	"github.com/utaipei/fundraising/pkg/httpserver"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/logger"
	"github.com/utaipei/fundraising/pkg/ratelimiter"
	"github.com/utaipei/fundraising/pkg/requestid"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Starts the JSON API and blocks until SIGINT or SIGTERM.

Configuration is read from the environment (APP_*, LOG_*, HTTP_*,
PUBLIC_BASE_URL, DEFAULT_LANG, QR_CODE_SIZE) and from a .env file
in the working directory when present.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}

	log := newLogger(cfg)
	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	cat, err := catalog.Default(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!cfg.IsProduction()),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	limiter, err := ratelimiter.New(cfg.RateLimit)
	if err != nil {
		return err
	}
	go limiter.Run(ctx, cfg.RateLimit.Interval*5)

	handler := api.New(cat, tr,
		api.WithLogger(log),
		api.WithBaseURL(cfg.PublicBaseURL),
		api.WithQRCodeSize(cfg.QRCodeSize),
		api.WithQRCacheSize(cfg.QRCacheSize),
		api.WithRateLimiter(limiter),
	).Handler()

	log.InfoContext(ctx, "starting",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Int("projects", len(cat.Projects())),
		slog.Any("languages", tr.SupportedLanguages()),
	)

	srv := httpserver.New(
		httpserver.WithConfig(cfg.HTTP),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, handler)
}

func newLogger(cfg config.App) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor, clientip.LoggerExtractor),
	}
	// The environment preset picks the level unless LOG_LEVEL overrides it.
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
