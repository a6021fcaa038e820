package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	API struct {
		Token string
	}
	LLM struct {
		Provider string
		Model    string
		APIKey   string
		BaseURL  string
		Prompt   string
	}
	SessionLifetime time.Duration
	InsecureCookies bool
}

// Load reads config from environment (CHALK_ prefix) and optional chalkline.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("chalkline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("llm.provider", "gemini")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.API.Token = v.GetString("api.token")
	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Prompt = v.GetString("llm.prompt")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHALK_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("CHALK_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("CHALK_DB_DSN is required")
	}

	// A provider without a key cannot make calls. Treat it as disabled rather
	// than failing startup, so the CRUD surface still works.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}
