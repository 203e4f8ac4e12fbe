/**
 * @description
 * This file handles configuration management for the designation service.
 * It uses the Viper library to read settings from environment variables or
 * a .env file, and to load the institution directory reference table from
 * an optional YAML file.
 *
 * @dependencies
 * - github.com/spf13/viper: For configuration management.
 */
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/trustmark/designation-service/internal/domain"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	InstitutionsFile string `mapstructure:"INSTITUTIONS_FILE"`
	SeedDemoData     bool   `mapstructure:"SEED_DEMO_DATA"`
	SyncEnabled      bool   `mapstructure:"SYNC_ENABLED"`
	SyncSchedule     string `mapstructure:"SYNC_SCHEDULE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("INSTITUTIONS_FILE", "")
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("SYNC_ENABLED", false)
	viper.SetDefault("SYNC_SCHEDULE", "@every 1h")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("INSTITUTIONS_FILE")
	_ = viper.BindEnv("SEED_DEMO_DATA")
	_ = viper.BindEnv("SYNC_ENABLED")
	_ = viper.BindEnv("SYNC_SCHEDULE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// defaultInstitutions is the built-in directory used when no institutions
// file is configured.
var defaultInstitutions = []domain.Institution{
	{ID: "fidelity", Name: "Fidelity Investments", Connected: true, APIVersion: "v2.1"},
	{ID: "schwab", Name: "Charles Schwab", Connected: true, APIVersion: "v1.8"},
	{ID: "vanguard", Name: "Vanguard", Connected: false},
	{ID: "tdameritrade", Name: "TD Ameritrade", Connected: true, APIVersion: "v2.0"},
}

// LoadInstitutions reads the institution directory from the given YAML file.
// An empty path yields the built-in directory.
func LoadInstitutions(path string) ([]domain.Institution, error) {
	if path == "" {
		return defaultInstitutions, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read institutions file %s: %w", path, err)
	}

	var institutions []domain.Institution
	if err := v.UnmarshalKey("institutions", &institutions); err != nil {
		return nil, fmt.Errorf("failed to parse institutions file %s: %w", path, err)
	}
	return institutions, nil
}
