package config

import (
	"encoding/json"
	"os"

	"github.com/ponzhin/habit-tracker/pkg/logger"
)

type Config struct {
	Database  DatabaseConfig  `json:"database"`
	Logging   LoggingConfig   `json:"logging"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Notify    NotifyConfig    `json:"notify"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	GormLevel string `json:"gorm_level"`
}

type SchedulerConfig struct {
	TickMinutes            int `json:"tick_minutes"`
	WindowMinutes          int `json:"window_minutes"`
	DispatchTimeoutSeconds int `json:"dispatch_timeout_seconds"`
}

type NotifyConfig struct {
	Transport string         `json:"transport"`
	Mailgun   MailgunConfig  `json:"mailgun"`
	Telegram  TelegramConfig `json:"telegram"`
}

type MailgunConfig struct {
	Domain string `json:"domain"`
	APIKey string `json:"api_key"`
	Sender string `json:"sender"`
}

type TelegramConfig struct {
	Token string `json:"token"`
}

var AppConfig Config

func LoadConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		logger.Error("failed to open config file", "error", err)
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&AppConfig); err != nil {
		logger.Error("failed to decode config file", "error", err)
		return err
	}

	return nil
}
