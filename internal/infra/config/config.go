package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env      string
	HTTPAddr string

	AvailabilityMode string // pms | memory
	PMSBaseURL       string
	PMSTimeout       time.Duration

	CacheMode            string // memory | redis
	RedisAddr            string
	AvailabilityCacheTTL time.Duration

	ConfigSourceMode string // mongo | memory
	MongoURI         string
	MongoDB          string

	AccommodationTaxRate float64
	FeeTaxRate           float64

	DefaultCleaningFee   int64
	DefaultDamageWaiver  int64
	DefaultPetFeePerWeek int64

	AuditEnabled     bool
	KafkaBrokers     []string
	KafkaTopicPrefix string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	FixturesPath string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		AvailabilityMode: strings.ToLower(getEnv("AVAILABILITY_MODE", "memory")),
		PMSBaseURL:       getEnv("PMS_BASE_URL", "http://localhost:7070"),
		CacheMode:        strings.ToLower(getEnv("CACHE_MODE", "memory")),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		ConfigSourceMode: strings.ToLower(getEnv("CONFIG_SOURCE_MODE", "memory")),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "staycove"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		S3Endpoint:       getEnv("S3_ENDPOINT", "http://localhost:9000"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:      getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:         getEnv("S3_BUCKET", "staycove-quotes"),
		FixturesPath:     getEnv("AVAILABILITY_FIXTURES", ""),
	}

	pmsTimeout, err := parseDurationEnv("PMS_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.PMSTimeout = pmsTimeout

	cacheTTL, err := parseDurationEnv("AVAILABILITY_CACHE_TTL", 2*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.AvailabilityCacheTTL = cacheTTL

	accomRate, err := parseFloatEnv("ACCOMMODATION_TAX_RATE", 0.0875)
	if err != nil {
		return Config{}, err
	}
	cfg.AccommodationTaxRate = accomRate

	feeRate, err := parseFloatEnv("FEE_TAX_RATE", 0.0675)
	if err != nil {
		return Config{}, err
	}
	cfg.FeeTaxRate = feeRate

	// Placeholder fee constants pending real PMS fee data; override per env.
	cleaning, err := parseInt64Env("FEE_CLEANING_DEFAULT", 350)
	if err != nil {
		return Config{}, err
	}
	cfg.DefaultCleaningFee = cleaning

	waiver, err := parseInt64Env("FEE_DAMAGE_WAIVER_DEFAULT", 99)
	if err != nil {
		return Config{}, err
	}
	cfg.DefaultDamageWaiver = waiver

	petFee, err := parseInt64Env("FEE_PET_PER_WEEK_DEFAULT", 250)
	if err != nil {
		return Config{}, err
	}
	cfg.DefaultPetFeePerWeek = petFee

	auditEnabled, err := parseBoolEnv("AUDIT_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	cfg.AuditEnabled = auditEnabled

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	useSSL, err := parseBoolEnv("S3_USE_SSL", false)
	if err != nil {
		return Config{}, err
	}
	cfg.S3UseSSL = useSSL

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AvailabilityMode {
	case "pms", "memory":
	default:
		return fmt.Errorf("invalid AVAILABILITY_MODE %q", c.AvailabilityMode)
	}
	switch c.CacheMode {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid CACHE_MODE %q", c.CacheMode)
	}
	switch c.ConfigSourceMode {
	case "mongo", "memory":
	default:
		return fmt.Errorf("invalid CONFIG_SOURCE_MODE %q", c.ConfigSourceMode)
	}
	if c.ConfigSourceMode == "mongo" && c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required when CONFIG_SOURCE_MODE=mongo")
	}
	if c.AvailabilityMode == "pms" && c.PMSBaseURL == "" {
		return fmt.Errorf("PMS_BASE_URL is required when AVAILABILITY_MODE=pms")
	}
	if c.AuditEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when AUDIT_ENABLED=true")
	}
	if math.IsNaN(c.AccommodationTaxRate) || c.AccommodationTaxRate < 0 {
		return fmt.Errorf("invalid ACCOMMODATION_TAX_RATE")
	}
	if math.IsNaN(c.FeeTaxRate) || c.FeeTaxRate < 0 {
		return fmt.Errorf("invalid FEE_TAX_RATE")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseFloatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return f, nil
}

func parseInt64Env(key string, def int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
