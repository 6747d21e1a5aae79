package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	Reset    ResetConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ResetConfig struct {
	// TokenSecret signs exchange tokens. Issuance and validation refuse to
	// run when it is empty; there is no unsigned fallback.
	TokenSecret  string
	CodeExpiry   time.Duration
	TokenExpiry  time.Duration
	VerifyExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("RESET_CODE_EXPIRY_MINUTES", 10)
	viper.SetDefault("RESET_TOKEN_EXPIRY_MINUTES", 5)
	viper.SetDefault("VERIFY_TOKEN_EXPIRY_MINUTES", 60)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("APP_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Reset: ResetConfig{
			TokenSecret:  viper.GetString("RESET_TOKEN_SECRET"),
			CodeExpiry:   time.Duration(viper.GetInt("RESET_CODE_EXPIRY_MINUTES")) * time.Minute,
			TokenExpiry:  time.Duration(viper.GetInt("RESET_TOKEN_EXPIRY_MINUTES")) * time.Minute,
			VerifyExpiry: time.Duration(viper.GetInt("VERIFY_TOKEN_EXPIRY_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
