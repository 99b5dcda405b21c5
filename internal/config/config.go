package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Host string
		Port int
		Mode string
	}
	Database struct {
		Driver      string
		DSN         string
		AutoMigrate bool
	}
	Auth struct {
		JWTSecret       string
		TokenExpiration int // minutes
		AdminUser       string
		// bcrypt hash of the admin password
		AdminPasswordHash string
	}
	Admin struct {
		BasePath        string
		Locale          string
		ManifestDir     string
		TranslationsDir string
	}
	Session struct {
		Secret string
		Name   string
	}
	Log struct {
		Development bool
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadConfig reads path when it is not empty, then applies PADMIN_*
// environment overrides, e.g. PADMIN_AUTH_JWTSECRET.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "padmin.db")
	v.SetDefault("database.automigrate", true)
	v.SetDefault("auth.tokenexpiration", 60)
	v.SetDefault("auth.adminuser", "admin")
	v.SetDefault("admin.basepath", "/admin")
	v.SetDefault("admin.locale", "en")
	v.SetDefault("session.name", "padmin")
	// keys that have no default still need to be known for env overrides
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.adminpasswordhash", "")
	v.SetDefault("admin.manifestdir", "")
	v.SetDefault("admin.translationsdir", "")
	v.SetDefault("session.secret", "")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix("PADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret is required")
	}
	if len(config.Session.Secret) < 32 {
		return nil, errors.New("session.secret must be at least 32 bytes")
	}

	return &config, nil
}
