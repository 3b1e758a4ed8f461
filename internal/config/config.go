package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Goals    GoalsConfig    `mapstructure:"goals"`
	Barcode  BarcodeConfig  `mapstructure:"barcode"`
}

type AppConfig struct {
	// Environment selects the logger flavour: "production" or anything else.
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"` // duration string, e.g. "1h"
}

type AuthConfig struct {
	// AdminEmails are given the admin role when they register.
	AdminEmails []string `mapstructure:"admin_emails"`
}

// GoalsConfig tunes the daily goal evaluation.
type GoalsConfig struct {
	Tolerance       float64 `mapstructure:"tolerance"`
	StreakDays      int     `mapstructure:"streak_days"`
	IncreasePercent float64 `mapstructure:"increase_percent"`
}

type BarcodeConfig struct {
	// SeedDefaults loads the built-in sample products at startup.
	SeedDefaults bool `mapstructure:"seed_defaults"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No file; rely on defaults and env vars.
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", "development")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "nutrition_app")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("auth.admin_emails", []string{})
	v.SetDefault("goals.tolerance", 0.9)
	v.SetDefault("goals.streak_days", 7)
	v.SetDefault("goals.increase_percent", 5.0)
	v.SetDefault("barcode.seed_defaults", true)

	// Registered so AutomaticEnv can populate them during Unmarshal.
	for _, key := range []string{
		"s3.endpoint", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name", "jwt.secret",
	} {
		v.SetDefault(key, "")
	}
}
