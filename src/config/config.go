package config

import (
	"fmt"
	"log"
	"os"
)

// The store endpoint and its credential are the two settings the process
// cannot run without.
func MustCheckEnv() {
	for _, key := range []string{"DATABASE_HOST", "DATABASE_PASSWORD"} {
		if os.Getenv(key) == "" {
			log.Fatalf("Missing required environment variable %s", key)
		}
	}
}

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// ORDER_NUMBER_PREFIX is printed on bank-transfer instructions, so it never
// changes between deployments.
const ORDER_NUMBER_PREFIX = "BE"
