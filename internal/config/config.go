package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	LegacyDBPath   string `mapstructure:"legacy_db_path"`
	LinksDBPath    string `mapstructure:"links_db_path"`
	TargetDBPath   string `mapstructure:"target_db_path"`
	FeaturesDBPath string `mapstructure:"features_db_path"`

	GDBaseURL      string        `mapstructure:"gd_base_url"`
	GDAuthToken    string        `mapstructure:"gd_auth_token"`
	GDRequestDelay time.Duration `mapstructure:"gd_request_delay"`
}

func New() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logrus.Fatalf("unmarshalling config: %v", err)
	}
	return cfg
}

func SetupCommon() {
	viper.SetDefault("gd_base_url", "https://www.boomlings.com/database")
	viper.SetDefault("gd_request_delay", "3s")
	viper.SetEnvPrefix("MIGRATE")

	viper.MustBindEnv("legacy_db_path")
	viper.MustBindEnv("target_db_path")
	viper.MustBindEnv("features_db_path")

	// optional: an empty links path disables the discord merge, an empty
	// token degrades level metadata resolution
	viper.BindEnv("links_db_path")
	viper.BindEnv("gd_auth_token")

	viper.AutomaticEnv()
}
