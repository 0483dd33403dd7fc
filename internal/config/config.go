package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Game       Game      `yaml:"game"`
	WebSocket  WebSocket `yaml:"websocket"`
	Redis      Redis     `yaml:"redis"`
}

type Game struct {
	ResetDelay time.Duration `yaml:"reset-delay" env:"GAME_RESET_DELAY" env-default:"5s"`
}

type WebSocket struct {
	Path           string        `yaml:"path" env:"WEBSOCKET_PATH" env-default:"/play"`
	SendBuffer     int           `yaml:"send-buffer" env:"WEBSOCKET_SEND_BUFFER" env-default:"16"`
	WriteTimeout   time.Duration `yaml:"write-timeout" env:"WEBSOCKET_WRITE_TIMEOUT" env-default:"10s"`
	PongTimeout    time.Duration `yaml:"pong-timeout" env:"WEBSOCKET_PONG_TIMEOUT" env-default:"60s"`
	MaxMessageSize int64         `yaml:"max-message-size" env:"WEBSOCKET_MAX_MESSAGE_SIZE" env-default:"512"`
}

type Redis struct {
	Enabled     bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	HistorySize int64  `yaml:"history-size" env:"REDIS_HISTORY_SIZE" env-default:"50"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
