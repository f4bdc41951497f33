// Command httpd runs the Pittsburgh guide HTTP service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/threerivers/guide/internal/api"
	"github.com/threerivers/guide/internal/catalog"
	"github.com/threerivers/guide/internal/config"
	"github.com/threerivers/guide/internal/configloader"
	"github.com/threerivers/guide/internal/guide"
	"github.com/threerivers/guide/internal/httpserver"
	"github.com/threerivers/guide/internal/intent"
	"github.com/threerivers/guide/internal/llm"
	"github.com/threerivers/guide/internal/logger"
	"github.com/threerivers/guide/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "guide: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configloader.GetConfigPath("config.yml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting guide service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	tel := telemetry.NewProvider()

	cat := catalog.New()
	classifier := intent.NewClassifier(intent.DefaultRules(), log)
	guideService := guide.New(cat, log)

	// The enhancer is active only when a credential is configured; without
	// one the service answers rule-based only.
	var enhancer api.Enhancer
	if cfg.LLM.APIKey != "" {
		enhancer = llm.NewClient(cfg.LLM, log)
		log.Info("Answer enhancer enabled",
			logger.String("model", cfg.LLM.Model),
			logger.Duration("timeout", cfg.LLM.Timeout),
		)
	} else {
		log.Info("Answer enhancer disabled, running rule-based only")
	}

	handler := api.NewHandler(classifier, guideService, enhancer, tel, log)

	server := httpserver.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithRoutes(func(router *gin.Engine) {
			api.SetupRoutes(router, handler)
			router.GET("/metrics", gin.WrapH(tel.Handler()))
		}).
		Build()

	return server.RunWithGracefulShutdown(context.Background())
}
