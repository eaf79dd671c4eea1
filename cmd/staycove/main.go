package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staycove/internal/app/audit"
	availabilityapp "staycove/internal/app/handlers/availability"
	pricingapp "staycove/internal/app/handlers/pricing"
	"staycove/internal/app/middleware"
	"staycove/internal/app/queries"
	domainavailability "staycove/internal/domain/availability"
	domainpricing "staycove/internal/domain/pricing"
	domainpromo "staycove/internal/domain/promo"
	domainproperty "staycove/internal/domain/property"
	"staycove/internal/domain/shared/money"
	"staycove/internal/infra/broker/kafka"
	"staycove/internal/infra/cache"
	"staycove/internal/infra/config"
	mongostore "staycove/internal/infra/db/mongo"
	ginserver "staycove/internal/infra/http/gin"
	"staycove/internal/infra/obs"
	"staycove/internal/infra/pms"
	"staycove/internal/infra/storage/memory"
	"staycove/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env, getenv("LOG_LEVEL", "info"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	composer, memorySource, err := buildComposer(ctx, cfg, logger)
	if err != nil {
		logger.Error("wiring failed", "error", err)
		os.Exit(1)
	}

	if memorySource != nil && cfg.FixturesPath != "" {
		if err := loadAvailabilityFixtures(memorySource, cfg.FixturesPath, logger); err != nil {
			logger.Warn("availability fixtures load failed", "error", err, "path", cfg.FixturesPath)
		}
	}

	recorder := buildAuditRecorder(cfg, logger)

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, pricingapp.GetQuoteQuery{}.Key(), &pricingapp.GetQuoteHandler{
		Composer: composer,
		Audit:    recorder,
	})
	queries.RegisterHandler(queryBus, availabilityapp.GetCalendarQuery{}.Key(), &availabilityapp.GetCalendarHandler{
		Source: composer.Availability,
	})

	bus := middleware.ChainQueries(queryBus, middleware.Logging(logger))

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, ginserver.Handlers{
		Quote:        ginserver.QuoteHandler{Queries: bus},
		Availability: ginserver.AvailabilityHandler{Queries: bus},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildComposer wires the availability, fee-config and promotion
// collaborators selected by configuration. The returned memory source is
// non-nil only in memory availability mode so fixtures can be loaded.
func buildComposer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*domainpricing.Composer, *memory.AvailabilitySource, error) {
	var availabilitySource domainavailability.Source
	var memorySource *memory.AvailabilitySource

	switch cfg.AvailabilityMode {
	case "pms":
		client := &pms.Client{
			HTTPClient: &http.Client{Timeout: cfg.PMSTimeout},
			BaseURL:    cfg.PMSBaseURL,
			Logger:     logger,
		}
		availabilityCache, err := buildCache(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		availabilitySource = &pms.CachedSource{
			Source: client,
			Cache:  availabilityCache,
			TTL:    cfg.AvailabilityCacheTTL,
			Logger: logger,
		}
	default:
		memorySource = memory.NewAvailabilitySource()
		availabilitySource = memorySource
	}

	var feeConfigs domainproperty.ConfigSource
	var promotions domainpromo.Validator
	switch cfg.ConfigSourceMode {
	case "mongo":
		client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("ping mongo: %w", err)
		}
		feeConfigs = mongostore.NewFeeConfigRepository(client)
		promotions = mongostore.NewPromotionRepository(client)
	default:
		feeConfigs = memory.NewFeeConfigStore()
		promotions = memory.NewPromoStore()
	}

	return &domainpricing.Composer{
		Availability: availabilitySource,
		FeeConfigs:   feeConfigs,
		FeeDefaults: domainproperty.FeeConfig{
			Cleaning:     money.Dollars(cfg.DefaultCleaningFee),
			PetPerWeek:   money.Dollars(cfg.DefaultPetFeePerWeek),
			DamageWaiver: money.Dollars(cfg.DefaultDamageWaiver),
		},
		Promotions: promotions,
		Rates: domainpricing.TaxRates{
			Accommodation: cfg.AccommodationTaxRate,
			Fee:           cfg.FeeTaxRate,
		},
		Logger: logger,
	}, memorySource, nil
}

func buildCache(cfg config.Config, logger *slog.Logger) (cache.Cache, error) {
	if cfg.CacheMode == "redis" {
		remote, err := cache.NewRedis(cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("availability cache using redis", "addr", cfg.RedisAddr)
		return remote, nil
	}
	return cache.NewMemory(), nil
}

func buildAuditRecorder(cfg config.Config, logger *slog.Logger) audit.Recorder {
	if !cfg.AuditEnabled {
		return audit.Nop{}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
	if err != nil {
		logger.Warn("kafka producer unavailable, auditing disabled", "error", err)
		return audit.Nop{}
	}

	fanout := audit.Fanout{Publisher: producer, Logger: logger}
	archiver, err := s3.NewArchiver(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, logger)
	if err != nil {
		logger.Warn("quote archive unavailable, publishing only", "error", err)
	} else {
		fanout.Archiver = archiver
	}
	return fanout
}

type availabilityFixture struct {
	PropertyID   string   `json:"property_id"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	NightlyRate  int64    `json:"nightly_rate"`
	MinimumStay  int      `json:"minimum_stay"`
	BlockedDates []string `json:"blocked_dates"`
}

func loadAvailabilityFixtures(source *memory.AvailabilitySource, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("availability fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures []availabilityFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures {
		start, err := time.Parse("2006-01-02", fx.Start)
		if err != nil {
			logger.Error("fixture invalid start date", "property_id", fx.PropertyID, "error", err)
			continue
		}
		end, err := time.Parse("2006-01-02", fx.End)
		if err != nil {
			logger.Error("fixture invalid end date", "property_id", fx.PropertyID, "error", err)
			continue
		}
		id := domainproperty.ID(fx.PropertyID)
		source.SeedRange(id, start, end, fx.NightlyRate, fx.MinimumStay)
		for _, blocked := range fx.BlockedDates {
			date, err := time.Parse("2006-01-02", blocked)
			if err != nil {
				logger.Error("fixture invalid blocked date", "property_id", fx.PropertyID, "error", err)
				continue
			}
			source.Block(id, date)
		}
		logger.Info("availability fixture imported", "property_id", fx.PropertyID)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
