package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const defaultQuizLength = 10

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`    // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`      // Telegram API token loaded from environment
	Corpus           Corpus `mapstructure:"corpus"` // corpus file locations
	Quiz             Quiz   `mapstructure:"quiz"`   // quiz behaviour section
}

// Corpus locates the YAML corpus files.
type Corpus struct {
	WordsPath     string `mapstructure:"words_path"`     // vocabulary corpus
	SentencesPath string `mapstructure:"sentences_path"` // sentence corpus
}

// Quiz contains quiz-related configuration parameters.
type Quiz struct {
	Length int `mapstructure:"length"` // questions per quiz session
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("corpus.words_path", "assets/corpus/words.yaml")
	v.SetDefault("corpus.sentences_path", "assets/corpus/sentences.yaml")
	v.SetDefault("quiz.length", defaultQuizLength)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.Quiz.Length <= 0 {
		cfg.Quiz.Length = defaultQuizLength
	}

	return &cfg, nil
}
