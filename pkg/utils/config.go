package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Email    EmailConfig
	SMS      SMSConfig
	OTP      OTPConfig
	Tracking TrackingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// EmailConfig: Driver "smtp" kirim beneran, "log" cuma ditulis ke log.
type EmailConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMSConfig: Driver "http" pakai SMS gateway, "log" cuma ditulis ke log.
type SMSConfig struct {
	Driver   string
	APIURL   string
	APIKey   string
	SenderID string
}

type OTPConfig struct {
	Length int
	// SendTimeoutSeconds membatasi tiap attempt notifikasi supaya
	// provider yang lambat tidak menggantung request.
	SendTimeoutSeconds int
}

type TrackingConfig struct {
	BaseURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "smart-tracking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("EMAIL_DRIVER", "log")
	viper.SetDefault("SMS_DRIVER", "log")
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_SEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TRACKING_BASE_URL", "http://localhost:3000/track")
	viper.SetDefault("LOG_PATH", "logs/")

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
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Driver:   viper.GetString("EMAIL_DRIVER"),
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetString("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		SMS: SMSConfig{
			Driver:   viper.GetString("SMS_DRIVER"),
			APIURL:   viper.GetString("SMS_API_URL"),
			APIKey:   viper.GetString("SMS_API_KEY"),
			SenderID: viper.GetString("SMS_SENDER_ID"),
		},
		OTP: OTPConfig{
			Length:             viper.GetInt("OTP_LENGTH"),
			SendTimeoutSeconds: viper.GetInt("OTP_SEND_TIMEOUT_SECONDS"),
		},
		Tracking: TrackingConfig{
			BaseURL: viper.GetString("TRACKING_BASE_URL"),
		},
	}

	return config, nil
}
