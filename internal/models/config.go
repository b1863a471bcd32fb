package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d *DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type Config struct {
	Seed          int     `mapstructure:"seed"`
	TaxRate       float64 `mapstructure:"tax_rate"`
	ComboDiscount float64 `mapstructure:"combo_discount"`

	MenuSource string     `mapstructure:"menu_source"` // "config" or "postgres"
	MenuItems  []MenuItem `mapstructure:"menu_items"`

	OutputDestination string `mapstructure:"output_destination"` // console, json, parquet, kafka, postgres
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`

	// simulate command
	SimOrders     int  `mapstructure:"sim_orders"`
	SimMaxItems   int  `mapstructure:"sim_max_items"`
	SimWorkers    int  `mapstructure:"sim_workers"`
	SimRandomMenu bool `mapstructure:"sim_random_menu"`
	SimMenuSize   int  `mapstructure:"sim_menu_size"`
}

// LoadConfig initializes and reads the configuration using Viper. When no
// config file is found the built-in defaults (including the stock burger-bar
// menu) are used instead.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// fall through to defaults when no file was asked for explicitly
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.MenuItems) == 0 && config.MenuSource != "postgres" {
		config.MenuItems = DefaultMenu()
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("tax_rate", 0.05)
	viper.SetDefault("combo_discount", 0.15)
	viper.SetDefault("menu_source", "config")
	viper.SetDefault("output_destination", "console")
	viper.SetDefault("output_folder", "order_data")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("sim_orders", 1000)
	viper.SetDefault("sim_max_items", 8)
	viper.SetDefault("sim_workers", 4)
	viper.SetDefault("sim_menu_size", 60)
}
