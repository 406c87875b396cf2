package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"stressindicator/bot"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var configByte []byte

const dateLayout = "2006-01-02"

type Config struct {
	Log    string `yaml:"log"`
	Output struct {
		Dir string `yaml:"dir" validate:"required"`
	} `yaml:"output"`
	Range struct {
		Start string `yaml:"start" validate:"required,datetime=2006-01-02"`
		End   string `yaml:"end" validate:"omitempty,datetime=2006-01-02"`
	} `yaml:"range"`
	Fred struct {
		KeyEnv string `yaml:"key-env" validate:"required"`
	} `yaml:"fred"`
	Telegram struct {
		ChatId string `yaml:"chatId"`
		Token  string `yaml:"token"`
	} `yaml:"telegram"`
	Schedule string `yaml:"schedule"`
}

func NewConfig() (*Config, error) {

	var ConfigInfo Config = Config{}

	err := yaml.Unmarshal(configByte, &ConfigInfo)
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&ConfigInfo); err != nil {
		return nil, fmt.Errorf("invalid configuration\n%w", err)
	}

	return &ConfigInfo, nil
}

func (c Config) LogLevel() (zerolog.Level, error) {

	level, err := zerolog.ParseLevel(c.Log)
	if err != nil {
		return zerolog.InfoLevel, err // fall back to Info
	}

	return level, nil
}

// FredApiKey reads the credential from the environment. An absent key is a
// configuration error and must abort before any network call.
func (c Config) FredApiKey() (string, error) {
	key := os.Getenv(c.Fred.KeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s not set. Get a free key at https://fred.stlouisfed.org/docs/api/api_key.html", c.Fred.KeyEnv)
	}
	return key, nil
}

// DateRange returns the configured fetch window. An empty end means today.
func (c Config) DateRange() (start, end time.Time, err error) {

	start, err = time.Parse(dateLayout, c.Range.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if c.Range.End == "" {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		end, err = time.Parse(dateLayout, c.Range.End)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s before start %s", c.Range.End, c.Range.Start)
	}

	return start, end, nil
}

// BotConfig returns nil when telegram is not configured.
func (c Config) BotConfig() (*bot.TeleBotConfig, error) {

	if c.Telegram.Token == "" {
		return nil, nil
	}

	chatId, err := strconv.ParseInt(c.Telegram.ChatId, 10, 64)
	if err != nil {
		return nil, err
	}

	return &bot.TeleBotConfig{
		Token:  c.Telegram.Token,
		ChatId: chatId,
	}, nil
}
