package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. The file is optional: values already in
// the environment are enough to run.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Printf("env file %s not loaded, using process environment: %v", envFile, err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// GetDuration parses Go duration syntax ("1s", "90m"). Invalid or
// non-positive values give def.
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Location reads an IANA zone name from TIMEZONE, time.Local when unset.
func (c *Config) Location() *time.Location {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, falling back to local: %v", name, err)
		return time.Local
	}
	return loc
}

// WeekStart reads WEEK_START; only "sunday" changes the Monday default.
func (c *Config) WeekStart() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("WEEK_START")), "sunday") {
		return time.Sunday
	}
	return time.Monday
}
