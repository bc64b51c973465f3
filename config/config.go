package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EventsDriverKafka    = "kafka"
	EventsDriverRabbitMQ = "rabbitmq"
	EventsDriverNone     = "none"
)

type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Events       EventsConfig       `yaml:"events"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	RabbitMQ     RabbitMQConfig     `yaml:"rabbitmq"`
	Auth         AuthConfig         `yaml:"auth"`
	Admin        AdminConfig        `yaml:"admin"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Destinations DestinationsConfig `yaml:"destinations"`
	Worker       WorkerConfig       `yaml:"worker"`
}

type HTTPConfig struct {
	Address     string   `yaml:"address"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int32  `yaml:"max_conns"`
}

// DSN prefers the full URL when it is set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type EventsConfig struct {
	Driver string `yaml:"driver"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type RabbitMQConfig struct {
	URL   string `yaml:"url"`
	Queue string `yaml:"queue"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
	BcryptCost    int    `yaml:"bcrypt_cost"`
}

type AdminConfig struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type CatalogConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

type DestinationsConfig struct {
	NominatimURL    string `yaml:"nominatim_url"`
	UserAgent       string `yaml:"user_agent"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

type WorkerConfig struct {
	CompletionSweepMinutes int `yaml:"completion_sweep_minutes"`
}

// LoadConfig reads the yaml file at path, loads .env when present and then
// applies environment overrides and defaults.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Events.Driver == "" {
		c.Events.Driver = EventsDriverKafka
	}
	c.Events.Driver = strings.ToLower(c.Events.Driver)
	if c.Kafka.BookingTopic == "" {
		c.Kafka.BookingTopic = "booking-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "travelbooking-worker"
	}
	if c.RabbitMQ.Queue == "" {
		c.RabbitMQ.Queue = "booking.notifications"
	}
	if c.Auth.TokenTTLHours <= 0 {
		c.Auth.TokenTTLHours = 24
	}
	if c.Auth.BcryptCost <= 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Catalog.CacheTTLSeconds <= 0 {
		c.Catalog.CacheTTLSeconds = 60
	}
	if c.Destinations.NominatimURL == "" {
		c.Destinations.NominatimURL = "https://nominatim.openstreetmap.org/search"
	}
	if c.Destinations.UserAgent == "" {
		c.Destinations.UserAgent = "TravelBooking/1.0"
	}
	if c.Destinations.TimeoutSeconds <= 0 {
		c.Destinations.TimeoutSeconds = 5
	}
	if c.Destinations.CacheTTLSeconds <= 0 {
		c.Destinations.CacheTTLSeconds = 600
	}
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	switch c.Events.Driver {
	case EventsDriverKafka:
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("kafka.brokers is required for the kafka events driver")
		}
	case EventsDriverRabbitMQ:
		if c.RabbitMQ.URL == "" {
			return errors.New("rabbitmq.url is required for the rabbitmq events driver")
		}
	case EventsDriverNone:
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
