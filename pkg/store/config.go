package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is what the CLI needs to reach the backend and its local cache.
type Config interface {
	APIURL() string
	Token() string
	Org() string
	CachePath() string
	AllowSkip() bool
}

// LoadConfig reads a .pumpdesk config file, letting PUMPDESK_* environment
// variables override any key.
func LoadConfig() (Config, error) {
	viper.SetDefault("api_url", "http://localhost:8080")
	viper.SetDefault("cache_path", "~/.pumpdesk.db")
	viper.SetConfigName(".pumpdesk") // .yaml is implicit
	viper.SetEnvPrefix("PUMPDESK")
	viper.AutomaticEnv()

	if override := os.Getenv("PUMPDESK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	cachePath, err := homedir.Expand(viper.GetString("cache_path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		ApiUrl:    viper.GetString("api_url"),
		AuthToken: viper.GetString("token"),
		OrgID:     viper.GetString("org"),
		Cache:     cachePath,
		Skip:      viper.GetBool("allow_skip"),
	}, nil
}

type fileConfig struct {
	ApiUrl    string `json:"api_url"`
	AuthToken string `json:"token"`
	OrgID     string `json:"org"`
	Cache     string `json:"cache_path"`
	Skip      bool   `json:"allow_skip"`
}

func (f *fileConfig) APIURL() string    { return f.ApiUrl }
func (f *fileConfig) Token() string     { return f.AuthToken }
func (f *fileConfig) Org() string       { return f.OrgID }
func (f *fileConfig) CachePath() string { return f.Cache }
func (f *fileConfig) AllowSkip() bool   { return f.Skip }
