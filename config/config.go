package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr      string
	RedisAddr     string // empty means in-memory score cache
	ScoreCacheTTL time.Duration

	MinimumSalary   decimal.Decimal
	AcceptanceScore int
	StrictScore     bool

	RateLimit       int
	RateLimitWindow time.Duration

	LogFormat string // text or json
	LogLevel  string
}

// LoadFromEnv reads the LOAN_* environment variables, falling back to
// defaults for the ones that are not set.
func LoadFromEnv() (Config, error) {
	minimumSalary, err := decimal.NewFromString(getenv("LOAN_MIN_SALARY", "65000"))
	if err != nil {
		return Config{}, errors.Wrap(err, "LOAN_MIN_SALARY is not a decimal")
	}
	acceptanceScore, err := getenvInt("LOAN_ACCEPT_SCORE", 300)
	if err != nil {
		return Config{}, err
	}
	strictScore, err := getenvBool("LOAN_STRICT_SCORE", false)
	if err != nil {
		return Config{}, err
	}
	rateLimit, err := getenvInt("LOAN_RATE_LIMIT", 5)
	if err != nil {
		return Config{}, err
	}
	rateLimitWindow, err := getenvDuration("LOAN_RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return Config{}, err
	}
	scoreCacheTTL, err := getenvDuration("LOAN_SCORE_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:        getenv("LOAN_HTTP_ADDR", ":8080"),
		RedisAddr:       os.Getenv("LOAN_REDIS_ADDR"),
		ScoreCacheTTL:   scoreCacheTTL,
		MinimumSalary:   minimumSalary,
		AcceptanceScore: acceptanceScore,
		StrictScore:     strictScore,
		RateLimit:       rateLimit,
		RateLimitWindow: rateLimitWindow,
		LogFormat:       getenv("LOAN_LOG_FORMAT", "text"),
		LogLevel:        getenv("LOAN_LOG_LEVEL", "info"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MinimumSalary.IsNegative() {
		return errors.New("LOAN_MIN_SALARY must be >= 0")
	}
	if c.RateLimit <= 0 {
		return errors.New("LOAN_RATE_LIMIT must be > 0")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("LOAN_RATE_LIMIT_WINDOW must be > 0")
	}
	if c.ScoreCacheTTL < 0 {
		return errors.New("LOAN_SCORE_CACHE_TTL must be >= 0")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Newf("LOAN_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Newf("%s is not an integer: %q", k, v)
	}
	return n, nil
}

func getenvBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Newf("%s is not a boolean: %q", k, v)
	}
	return b, nil
}

func getenvDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Newf("%s is not a duration: %q", k, v)
	}
	return d, nil
}
