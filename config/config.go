package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS     = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS    = "0.0.0.0:8080"
	DEBUG_MODE      = true
	MYSQL_DSN       = ""          // MySQL will be used if this is set
	POSTGRES_DSN    = ""          // Postgres will be used if MYSQL_DSN is not set and this is
	SQLITE_FILE     = "yatube.db" // SQLite is the fallback when neither DSN is configured
	SESSION_KEY     = ""          // Random per process when empty, which logs everyone out on restart
	SESSION_MAX_AGE = 14 * 86400  // 2 weeks
	LOGIN_URL       = "/auth/login/"
	CORS_ORIGINS    = "" // e.g. "https://example.com,https://www.example.com"
	POSTS_PER_PAGE  = 10
	PASSWORD_COST   = 10 // bcrypt cost
	// Media (post images)
	MEDIA_STORAGE    = "disk" // "disk" or "s3"
	MEDIA_DIR        = "media"
	S3_BUCKET        = ""
	S3_REGION        = "us-east-1"
	S3_ENDPOINT      = "" // For S3 compatible services (MinIO, B2, etc)
	S3_PREFIX        = "" // Key prefix inside the bucket
	S3_ACCESS_KEY    = ""
	S3_SECRET_KEY    = ""
	THUMB_SIZE       = 960               // Thumbnails fit in a THUMB_SIZE x THUMB_SIZE box
	MAX_IMAGE_SIZE   = int64(10 << 20)   // 10 MB, encoded
	MAX_IMAGE_PIXELS = int64(40_000_000) // width x height, images are fully decoded for thumbnails
)

func init() {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvString("LOGIN_URL", &LOGIN_URL)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("PASSWORD_COST", &PASSWORD_COST)
	readEnvString("MEDIA_STORAGE", &MEDIA_STORAGE)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
	readEnvInt64("MAX_IMAGE_SIZE", &MAX_IMAGE_SIZE)
	readEnvInt64("MAX_IMAGE_PIXELS", &MAX_IMAGE_PIXELS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}

func readEnvInt64(name string, value *int64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return
	}
	*value = i
}
