package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	MediaDir          string        `mapstructure:"MEDIA_DIR"`
	MaxUploadBytes    int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	ConfigCacheTTL    time.Duration `mapstructure:"CONFIG_CACHE_TTL"`
	HydrateDebounce   time.Duration `mapstructure:"HYDRATE_DEBOUNCE"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// If no port is specified in the address, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress

	urlStr, err := url.Parse(addr)
	if err != nil {
		return "", "", fmt.Errorf("error parsing http server url: %w", err)
	}

	hostPort := urlStr.Host
	if hostPort == "" {
		// no scheme: url.Parse treats "localhost:8080" as opaque
		hostPort = addr
	}

	host, port, err = net.SplitHostPort(hostPort)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the address itself is the hostname.
		host = strings.Trim(hostPort, "[]")
		port = ""
		err = nil
	}

	if host == "" || strings.ContainsAny(host, " ") {
		return "", "", fmt.Errorf("invalid host in http server address %q", addr)
	}

	return host, port, nil
}
