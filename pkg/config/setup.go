package pkg

import (
	"errors"
	"time"

	"github.com/ChokeGuy/coin-change/util"
	"github.com/spf13/viper"
)

// Config is the configuration for the application
type Config struct {
	ENV                  string        `mapstructure:"ENV"`
	HttpServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	SolverURL            string        `mapstructure:"SOLVER_URL"`
	SolverTimeout        time.Duration `mapstructure:"SOLVER_TIMEOUT"`
	DefaultDenominations string        `mapstructure:"DEFAULT_DENOMINATIONS"`
	DenominationPolicy   string        `mapstructure:"DENOMINATION_POLICY"`
	ShutdownTimeout      time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// IsDevelopment reports whether the app runs on a developer machine
func (c Config) IsDevelopment() bool {
	return c.ENV == "development"
}

// LoadConfig loads the configuration from the file, environment variables taking precedence.
// A missing .env file leaves the defaults in place.
func LoadConfig(path string) (config Config, err error) {
	if path == "" {
		path = "." // Default to current directory if no path is provided
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env") // Set the config name to ".env" without the extension
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("SOLVER_URL", "http://localhost:8080/coin-change")
	v.SetDefault("SOLVER_TIMEOUT", 10*time.Second)
	v.SetDefault("DEFAULT_DENOMINATIONS", util.DefaultDenominations)
	v.SetDefault("DENOMINATION_POLICY", "warn")
	v.SetDefault("SHUTDOWN_TIMEOUT", 15*time.Second)

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
