package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRegenerationLimit  = 0
	defaultPurchaseBatchSize  = 3
	defaultWaterDailyCap      = 8
	defaultStreakLookbackDays = 30
	defaultGenerationTimeout  = 45 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth configuration for verifying identity-provider tokens.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Gemini configuration for the AI plan generator.
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// Entitlement configuration for free trials and regeneration quotas.
	Entitlement *EntitlementConfig `json:"entitlement" yaml:"entitlement"`

	// Progress configuration for daily tracking limits.
	Progress *ProgressConfig `json:"progress" yaml:"progress"`

	// Recipes configuration for the recipe library and importer.
	Recipes *RecipesConfig `json:"recipes" yaml:"recipes"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines how identity-provider access tokens are verified.
type AuthConfig struct {
	TokenSecret string `json:"tokenSecret" yaml:"tokenSecret"`
	Issuer      string `json:"issuer" yaml:"issuer"`
}

// GeminiConfig defines the external text-generation service parameters.
type GeminiConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model"`

	// GenerationTimeout bounds a single plan-generation round trip.
	GenerationTimeout time.Duration `json:"generationTimeout" yaml:"generationTimeout"`

	MaxOutputTokens int32   `json:"maxOutputTokens" yaml:"maxOutputTokens"`
	Temperature     float32 `json:"temperature" yaml:"temperature"`
}

// EntitlementConfig defines free-trial and regeneration quota parameters.
type EntitlementConfig struct {
	// DefaultRegenerationLimit is the starter allotment on lazily-created subscriptions.
	DefaultRegenerationLimit int `json:"defaultRegenerationLimit" yaml:"defaultRegenerationLimit"`

	// PurchaseBatchSize is how many regenerations one purchase adds.
	PurchaseBatchSize int `json:"purchaseBatchSize" yaml:"purchaseBatchSize"`

	// PurchaseUnitPrice is the amount recorded on the purchase audit row.
	PurchaseUnitPrice float64 `json:"purchaseUnitPrice" yaml:"purchaseUnitPrice"`
}

// ProgressConfig defines daily-tracking limits.
type ProgressConfig struct {
	WaterDailyCap      int `json:"waterDailyCap" yaml:"waterDailyCap"`
	StreakLookbackDays int `json:"streakLookbackDays" yaml:"streakLookbackDays"`
}

// RecipesConfig defines the recipe importer parameters.
type RecipesConfig struct {
	ImportEnabled bool          `json:"importEnabled" yaml:"importEnabled"`
	FetchTimeout  time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEMINI_APIKEY -> gemini.apiKey (not gemini.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Entitlement == nil {
		cfg.Entitlement = &EntitlementConfig{}
	}
	if cfg.Entitlement.DefaultRegenerationLimit < 0 {
		cfg.Entitlement.DefaultRegenerationLimit = defaultRegenerationLimit
	}
	if cfg.Entitlement.PurchaseBatchSize <= 0 {
		cfg.Entitlement.PurchaseBatchSize = defaultPurchaseBatchSize
	}

	if cfg.Progress == nil {
		cfg.Progress = &ProgressConfig{}
	}
	if cfg.Progress.WaterDailyCap <= 0 {
		cfg.Progress.WaterDailyCap = defaultWaterDailyCap
	}
	if cfg.Progress.StreakLookbackDays <= 0 {
		cfg.Progress.StreakLookbackDays = defaultStreakLookbackDays
	}

	if cfg.Gemini != nil && cfg.Gemini.GenerationTimeout <= 0 {
		cfg.Gemini.GenerationTimeout = defaultGenerationTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
