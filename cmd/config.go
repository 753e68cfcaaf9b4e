package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pharmadmin/internal/adapters/out/backend"
	"pharmadmin/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const (
	DefaultHTTPPort     = "8080"
	DefaultSyncSchedule = "0 */5 * * * *"
)

type Config struct {
	HTTPPort string

	BackendBaseURL       string
	BackendUser          string
	BackendPassword      string
	BackendOrdersPath    string
	BackendInTransitPath string
	BackendPageSize      int
	BackendTimeout       time.Duration
	BackendMaxRetries    uint64

	// SyncSchedule is a six-field cron expression. Empty disables periodic refresh.
	SyncSchedule string

	LogLevel slog.Level
}

// ConfigFromEnv reads the configuration through lookupEnv (os.LookupEnv in
// production) and reports every invalid value at once. Unset optional values
// take their defaults. SYNC_SCHEDULE set to "" disables periodic refresh.
func ConfigFromEnv(lookupEnv func(string) (string, bool)) (Config, error) {
	getenv := func(key string) string {
		v, _ := lookupEnv(key)
		return v
	}

	cfg := Config{
		HTTPPort:             valueOr(getenv("HTTP_PORT"), DefaultHTTPPort),
		BackendBaseURL:       strings.TrimSpace(getenv("BACKEND_BASE_URL")),
		BackendUser:          getenv("BACKEND_BASIC_AUTH_USER"),
		BackendPassword:      getenv("BACKEND_BASIC_AUTH_PASS"),
		BackendOrdersPath:    valueOr(getenv("BACKEND_ORDERS_PATH"), backend.DefaultOrdersPath),
		BackendInTransitPath: valueOr(getenv("BACKEND_IN_TRANSIT_PATH"), backend.DefaultInTransitPath),
		BackendPageSize:      backend.DefaultPageSize,
		BackendTimeout:       backend.DefaultTimeout,
		BackendMaxRetries:    backend.DefaultMaxRetries,
		SyncSchedule:         DefaultSyncSchedule,
		LogLevel:             slog.LevelInfo,
	}

	var problems []error

	if v := getenv("BACKEND_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BACKEND_PAGE_SIZE", err))
		case n < 1 || n > 1000:
			problems = append(problems, errs.NewValueIsOutOfRangeError("BACKEND_PAGE_SIZE", n, 1, 1000))
		default:
			cfg.BackendPageSize = n
		}
	}

	if v := getenv("BACKEND_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BACKEND_TIMEOUT", err))
		case d <= 0:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BACKEND_TIMEOUT",
				fmt.Errorf("%s is not positive", d)))
		default:
			cfg.BackendTimeout = d
		}
	}

	if v := getenv("BACKEND_MAX_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BACKEND_MAX_RETRIES", err))
		} else {
			cfg.BackendMaxRetries = n
		}
	}

	if v, ok := lookupEnv("SYNC_SCHEDULE"); ok {
		cfg.SyncSchedule = strings.TrimSpace(v)
	}
	if cfg.SyncSchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(cfg.SyncSchedule); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SYNC_SCHEDULE", err))
		}
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}

	if err := cfg.Validate(); err != nil {
		problems = append(problems, err)
	}

	return cfg, errors.Join(problems...)
}

// Validate checks the values that have no default.
func (c Config) Validate() error {
	var problems []error
	if c.BackendBaseURL == "" {
		problems = append(problems, errs.NewValueIsRequiredError("BACKEND_BASE_URL"))
	}
	if c.BackendUser == "" {
		problems = append(problems, errs.NewValueIsRequiredError("BACKEND_BASIC_AUTH_USER"))
	}
	if c.BackendPassword == "" {
		problems = append(problems, errs.NewValueIsRequiredError("BACKEND_BASIC_AUTH_PASS"))
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("HTTP_PORT", c.HTTPPort, 1, 65535))
	}
	return errors.Join(problems...)
}

// BackendConfig returns the backend client settings.
func (c Config) BackendConfig() backend.Config {
	return backend.Config{
		BaseURL:       c.BackendBaseURL,
		Username:      c.BackendUser,
		Password:      c.BackendPassword,
		OrdersPath:    c.BackendOrdersPath,
		InTransitPath: c.BackendInTransitPath,
		PageSize:      c.BackendPageSize,
		Timeout:       c.BackendTimeout,
		MaxRetries:    c.BackendMaxRetries,
	}
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
