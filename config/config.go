package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the MySQL connection described by the environment.
func InitDB() (*gorm.DB, error) {
	user := getEnv("DB_USER", "root")
	password := getEnv("DB_PASSWORD", "")
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	name := getEnv("DB_NAME", "backoffice")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// StaticDir is where uploaded avatars and event images live; the router
// serves it under /static.
func StaticDir() string {
	return getEnv("STATIC_FILES_DIR", "static")
}

// AllowedOrigin is the web front-end origin permitted by CORS.
func AllowedOrigin() string {
	return getEnv("CORS_ORIGIN", "http://localhost:3000")
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
