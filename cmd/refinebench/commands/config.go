package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Dataset    string         `mapstructure:"dataset"`
	Expression string         `mapstructure:"expression"`
	Output     string         `mapstructure:"output"`
	Format     string         `mapstructure:"format"`
	LogDir     string         `mapstructure:"log_dir"`
	LogFormat  string         `mapstructure:"log_format"`
	Generate   GenerateConfig `mapstructure:"generate"`
}

type GenerateConfig struct {
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".refinebench")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
