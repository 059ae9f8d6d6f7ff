package common

import (
	"os"

	"github.com/joho/godotenv"
)

// Общая конфигурация всего приложения
type Config struct {
	DbDriverName   string `validate:"required"`
	Dsn            string `validate:"required"`
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	ServerAddr     string `validate:"required"`
	EmpIdPrefix    string `validate:"required,alphanum"`
	LogLevel       string
	LogDevelopMode bool
}

// Получение конфигурации из .env файла или переменных окружения
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		DbDriverName:   os.Getenv("DB_DRIVER_NAME"),
		Dsn:            os.Getenv("DB_DSN"),
		AppName:        getEnvOrDefault("APP_NAME", "emps"),
		AppVersion:     getEnvOrDefault("APP_VERSION", "0.0.0"),
		ServerAddr:     getEnvOrDefault("SERVER_ADDR", ":8080"),
		EmpIdPrefix:    getEnvOrDefault("EMP_ID_PREFIX", "rewardlyEmp"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogDevelopMode: os.Getenv("LOG_DEVELOP_MODE") == "true",
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
