package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// CORSAllow is a comma separated list of allowed origins. Empty allows any origin.
	CORSAllow string `mapstructure:"CORS_ALLOW"`

	// RawBudgetBytes bounds the normalized body returned in raw mode.
	RawBudgetBytes int `mapstructure:"RAW_BUDGET_BYTES" default:"20000" required:"true"`
	// DebugExcerptBytes bounds the body excerpt attached to failures in debug mode.
	DebugExcerptBytes int `mapstructure:"DEBUG_EXCERPT_BYTES" default:"2000" required:"true"`

	// Estes holds the Estes tracking service configuration.
	Estes EstesConfig `mapstructure:",squash"`

	// Cache holds the tracking record cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy configuration.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// EstesConfig holds the endpoint, request variants and credentials for Estes.
type EstesConfig struct {
	// User is the Estes account user. Absence is reported per request, not at startup.
	User string `mapstructure:"ESTES_USER"`
	// Password is the Estes account password.
	Password string `mapstructure:"ESTES_PASS"`
	// Endpoint is the SOAP tracking service URL.
	Endpoint string `mapstructure:"ESTES_ENDPOINT" default:"https://www.estes-express.com/shipmenttracking/services/ShipmentTrackingService" required:"true"`
	// SOAPAction is the action token of the first attempt.
	SOAPAction string `mapstructure:"ESTES_SOAP_ACTION" default:"search" required:"true"`
	// SOAPActionAlt is the action token of the retry attempt.
	SOAPActionAlt string `mapstructure:"ESTES_SOAP_ACTION_ALT" default:"\"search\"" required:"true"`
	// AttemptTimeout bounds each request attempt.
	AttemptTimeout time.Duration `mapstructure:"ESTES_ATTEMPT_TIMEOUT" default:"10s" required:"true"`
	// LinkURL is the public tracking page used for deep links.
	LinkURL string `mapstructure:"ESTES_LINK_URL" default:"https://www.estes-express.com/myestes/shipment-tracking/?type=PRO" required:"true"`
	// LinkParam is the query parameter of LinkURL that carries the PRO number.
	LinkParam string `mapstructure:"ESTES_LINK_PARAM" default:"query" required:"true"`
	// PreferDifferentStatus selects the retry response when both attempts
	// failed with different status codes.
	PreferDifferentStatus bool `mapstructure:"RETRY_PREFER_DIFFERENT_STATUS" default:"true"`
}

// CacheConfig holds the record cache settings.
type CacheConfig struct {
	// RedisURL enables the cache when set, e.g. redis://localhost:6379/0.
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTL is how long a successful record is served from cache.
	TTL time.Duration `mapstructure:"CACHE_TTL" default:"60s"`
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USER"`
	Password string `mapstructure:"PROXY_PASS"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("unable to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks that fields marked as required have non-zero
// values and reports every missing key at once.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	var errs error
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			errs = multierr.Append(errs, validateRequired(val.Field(i).Addr().Interface()))
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			key := field.Tag.Get("mapstructure")
			errs = multierr.Append(errs, fmt.Errorf("missing required configuration: %s", key))
		}
	}
	return errs
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
