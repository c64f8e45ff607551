package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port     string `envconfig:"APP_PORT" default:"8080"`
		Timezone string `envconfig:"APP_TIMEZONE" default:"Local"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"json"`
	}

	MySQL struct {
		Host        string `envconfig:"MYSQL_HOST" default:"mysql"`
		Port        string `envconfig:"MYSQL_PORT" default:"3306"`
		DB          string `envconfig:"MYSQL_DB" default:"loans"`
		User        string `envconfig:"MYSQL_USER" default:"loans"`
		Pass        string `envconfig:"MYSQL_PASS" default:"loans"`
		Automigrate bool   `envconfig:"MYSQL_AUTOMIGRATE" default:"true"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"redis:6379"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
		Password string `envconfig:"REDIS_PASSWORD"`
	}

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
		JWTIssuer string `envconfig:"AUTH_JWT_ISSUER"`
	}

	RateLimit struct {
		Max    int           `envconfig:"RATE_LIMIT_MAX" default:"30"`
		Window time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	}
}

// Load reads a .env file when one exists, then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MySQL.Host == "" || c.MySQL.Port == "" || c.MySQL.DB == "" || c.MySQL.User == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure ports are valid
	if _, err := net.LookupPort("tcp", c.MySQL.Port); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQL.Port, err)
	}
	if c.App.Port == "" {
		return errors.New("missing APP_PORT")
	}
	if n, err := strconv.Atoi(c.App.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid APP_PORT %q", c.App.Port)
	}
	if c.Redis.Addr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("missing AUTH_JWT_SECRET")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RateLimit.Max > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_WINDOW %s", c.RateLimit.Window)
	}
	return nil
}

// Location is the zone loan submission times are rendered in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQL.Host, c.MySQL.Port) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME; clientFoundRows makes an update that
	// changes nothing still report the matched row
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&clientFoundRows=true&charset=utf8mb4,utf8",
		c.MySQL.User, c.MySQL.Pass, c.mysqlAddr(), c.MySQL.DB)
}
