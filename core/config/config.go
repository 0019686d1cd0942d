package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"mocklet/core/logger"
	"mocklet/core/server"
	"mocklet/core/storage"
	"mocklet/feature/mock"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP listener.
	Server server.Config `mapstructure:"server"`
	// Mock holds the route and response definition.
	Mock mock.Config `mapstructure:"mock"`
	// Storage holds configuration for the optional object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"url":        "mock.endpoint",
	"response":   "mock.response",
	"status":     "mock.status",
	"port":       "server.port",
	"host":       "server.host",
	"cors":       "server.cors",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// RegisterFlags defines the command-line flags understood by LoadConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("url", "/api", "API endpoint")
	fs.String("response", mock.DefaultResponse, "Response file or text")
	fs.Int("port", 8080, "Port number")
	fs.Int("status", 200, "HTTP status code")
	fs.String("host", "", "Interface to bind (default all)")
	fs.Bool("cors", true, "Enable permissive CORS headers")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", "console", "Log format (console, json)")
}

// LoadConfig loads configuration from defaults, a .env file in path,
// environment variables and finally any flags set on fs (which may be nil).
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	// Ignore error if file doesn't exist; real environment variables win.
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
