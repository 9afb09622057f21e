// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Oracle OracleConfig `mapstructure:"oracle"`
	Tracks struct {
		DefaultPageCount int `mapstructure:"default_page_count"`
		MaxPageCount     int `mapstructure:"max_page_count"`
	} `mapstructure:"tracks"`
	CORS CORSConfig `mapstructure:"cors"`
}

// DatabaseConfig は URL があればそれを優先し、なければ個別の接続パラメータを使う
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// OracleConfig は生成モデル (OpenAI互換API) の設定
type OracleConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries"`
	// LegacyNotFound が true の場合、オラクル障害も 404 で返す (旧クライアント互換)
	LegacyNotFound bool `mapstructure:"legacy_not_found"`
}

// Budget はリトライを含めた1回の生成にかかりうる最大時間の目安です
func (c OracleConfig) Budget() time.Duration {
	attempts := time.Duration(c.MaxRetries + 1)
	// バックオフの待ち時間分の余裕を足す
	return c.Timeout*attempts + 5*time.Second*attempts
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// DSN は GORM の postgres ドライバに渡す接続文字列を返します
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	parts := []string{}
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
	}
	add("host", c.Host)
	if c.Port > 0 {
		add("port", fmt.Sprintf("%d", c.Port))
	}
	add("user", c.User)
	add("password", c.Password)
	add("dbname", c.Name)
	add("sslmode", c.SSLMode)
	return strings.Join(parts, " ")
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_ORACLE_MODEL のように接頭辞付きの環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 旧バージョンの環境変数名もそのまま使えるようにする
	legacyEnv := map[string]string{
		"oracle.api_key":    "OPENAI_API_KEY",
		"server.port":       "PORT",
		"database.url":      "DATABASE_URL",
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.user":     "DB_USER",
		"database.password": "DB_PASSWORD",
		"database.name":     "DB_NAME",
		"database.sslmode":  "DB_SSLMODE",
	}
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("config.LoadConfig: bind %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	normalize(&cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Oracle Model: %s (timeout=%s, retries=%d)", cfg.Oracle.Model, cfg.Oracle.Timeout, cfg.Oracle.MaxRetries)
	if cfg.Oracle.APIKey == "" {
		// 起動は止めない。生成呼び出しがオラクル境界で失敗する
		log.Println("Warning: Oracle API key is not set. Card generation will fail.")
	}
	if cfg.Database.DSN() == "" {
		log.Println("Warning: Database connection is not configured.")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("oracle.model", DefaultOracleModel)
	v.SetDefault("oracle.temperature", DefaultOracleTemperature)
	v.SetDefault("oracle.max_tokens", DefaultOracleMaxTokens)
	v.SetDefault("oracle.timeout", DefaultOracleTimeout)
	v.SetDefault("oracle.max_retries", DefaultOracleMaxRetries)
	v.SetDefault("tracks.default_page_count", DefaultTracksPageCount)
	v.SetDefault("tracks.max_page_count", DefaultTracksMaxPageCount)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{"X-Card-Source"})
	v.SetDefault("cors.max_age", 300)
}

// normalize は不正な値をデフォルトに戻します
func normalize(cfg *Config) {
	// PORT=8000 のようにコロン無しで渡されることがある
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	} else if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.Oracle.Timeout <= 0 {
		log.Printf("Oracle timeout not set or invalid, using default '%s'", DefaultOracleTimeout)
		cfg.Oracle.Timeout = DefaultOracleTimeout
	}
	if cfg.Oracle.MaxRetries < 0 {
		cfg.Oracle.MaxRetries = 0
	}
	if cfg.Oracle.MaxTokens <= 0 {
		cfg.Oracle.MaxTokens = DefaultOracleMaxTokens
	}
	if cfg.Tracks.MaxPageCount <= 0 {
		cfg.Tracks.MaxPageCount = DefaultTracksMaxPageCount
	}
	if cfg.Tracks.DefaultPageCount <= 0 || cfg.Tracks.DefaultPageCount > cfg.Tracks.MaxPageCount {
		cfg.Tracks.DefaultPageCount = DefaultTracksPageCount
	}
}
