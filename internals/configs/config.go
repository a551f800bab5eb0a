package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi proses. Dibangun sekali di main()
// dan dioper eksplisit ke komponen yang membutuhkan (tanpa global).
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	JWTExpires     time.Duration
	GoogleClientID string

	AllowedOrigins []string
	StaticDir      string
	Port           string
}

// =======================
// ENV LOADER
// =======================
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	}

	cfg := &Config{
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "password"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "km"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		JWTSecret:      GetEnv("JWT_SECRET", "change-me"),
		JWTExpires:     time.Duration(getEnvInt("JWT_EXPIRES_MINUTES", 120)) * time.Minute,
		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID"),

		StaticDir: GetEnv("STATIC_DIR", "./static"),
		Port:      GetEnv("PORT", "3000"),
	}

	origins := GetEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.JWTSecret == "change-me" {
		log.Println("⚠️ JWT_SECRET belum diset, pakai default (jangan di production!)")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
