package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// AppConfig holds the application-level configuration
type AppConfig struct {
	Port              int    `mapstructure:"port"`
	UploadDir         string `mapstructure:"upload_dir"`
	SessionDBPath     string `mapstructure:"session_db_path"`
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes"`
	MaxUploadMB       int    `mapstructure:"max_upload_mb"`
	MaxHistory        int    `mapstructure:"max_history"`
	OpenAIModel       string `mapstructure:"openai_model"`
	EncryptAtRest     bool   `mapstructure:"encrypt_at_rest"`
}

var Config *AppConfig

func LoadConfig(path string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	viper.SetDefault("port", 8000)
	viper.SetDefault("upload_dir", "./uploads")
	viper.SetDefault("session_db_path", "./session_db")
	viper.SetDefault("session_ttl_minutes", 120)
	viper.SetDefault("max_upload_mb", 25)
	viper.SetDefault("max_history", 10)
	viper.SetDefault("openai_model", "gpt-4o-mini")
	viper.SetDefault("encrypt_at_rest", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Could not read config file, using defaults: %v", err)
	}

	var appConfig AppConfig
	if err := viper.Unmarshal(&appConfig); err != nil {
		log.Fatalf("❌ Unable to decode config into struct: %v", err)
	}

	Config = &appConfig

	fmt.Println("✅ Configuration loaded successfully.")
}
