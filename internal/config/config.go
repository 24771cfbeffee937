package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	PaymentGateway PaymentGateway `toml:"payment_gateway"`
	Assistant      Assistant      `toml:"assistant"`
	Pricing        Pricing        `toml:"pricing"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PaymentGateway настройки клиента платежного шлюза
type PaymentGateway struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	Currency string `toml:"currency"`
}

// Assistant настройки AI-ассистента поиска
// API-ключ берется из переменной окружения, чтобы не хранить его в конфиге
type Assistant struct {
	Enabled   bool   `toml:"enabled"`
	APIKeyEnv string `toml:"api_key_env"`
	Model     string `toml:"model"`
}

// APIKey возвращает ключ API из переменной окружения
func (a *Assistant) APIKey() string {
	if a.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(a.APIKeyEnv)
}

// Pricing параметры расчета стоимости аренды
type Pricing struct {
	ServiceFeePercent float64 `toml:"service_fee_percent"`
	FlatServiceFee    float64 `toml:"flat_service_fee"`
	FlatInsurance     float64 `toml:"flat_insurance"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}
