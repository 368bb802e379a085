package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvFile = "./configs/.env"

type Config struct {
}

// New loads the env file once. The file is optional: variables may come
// from the environment alone.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("BALANCE_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
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

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// GetWeekday accepts english weekday names ("sunday", "Mon") or 0-6
func (c *Config) GetWeekday(key string, def time.Weekday) time.Weekday {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d
		}
	}
	log.Printf("unknown weekday %q in %s, using %s", v, key, def)
	return def
}

func (c *Config) GetLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatal("loading timezone error: ", err)
	}
	return loc
}
