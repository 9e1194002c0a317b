// /internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	GuildID      string `env:"DISCORD_GUILD_ID"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogFile     string `env:"WATCHER_LOG_FILE"`

	Notifications bool `env:"WATCHER_NOTIFICATIONS" envDefault:"true"`
	Sound         bool `env:"WATCHER_SOUND" envDefault:"true"`

	// EventBuffer is the capacity of the classifier-to-UI channel. The
	// producer blocks when it is full, so keep it small.
	EventBuffer int `env:"WATCHER_EVENT_BUFFER" envDefault:"1"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
