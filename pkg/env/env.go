package env

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one is present. API keys (OPENAI_API_KEY,
// SESSION_STORE_KEY) are only ever read from the environment, never from
// config files.
func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		log.Println("⚠️  No .env file found, using system envs")
	}
}

func GetEnv(key string, fallback string) string {
	if value, exist := os.LookupEnv(key); exist {
		return value
	}
	return fallback
}

// GetEnvBool treats unset or unparseable values as false, so DEBUG=0
// and DEBUG=false behave the same as leaving it out.
func GetEnvBool(key string) bool {
	value, exist := os.LookupEnv(key)
	if !exist {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
