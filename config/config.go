package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BIND_ADDRESS = "0.0.0.0:8080"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	DEBUG_MODE   = true
	// SQLite is used when neither MYSQL_DSN nor POSTGRES_DSN is set
	SQLITE_FILE  = "yatube.db"
	MYSQL_DSN    = ""
	POSTGRES_DSN = ""
	// Session cookies are signed with this key
	SESSION_KEY     = "this is a long key"
	SESSION_MAX_AGE = 14 * 86400 // 2 weeks
	// Post images are stored in MEDIA_DIR unless S3_BUCKET is set
	MEDIA_DIR   = "media"
	S3_BUCKET   = ""
	S3_REGION   = "us-east-1"
	S3_ENDPOINT = "" // For S3-compatible services, e.g. MinIO
	S3_PREFIX   = ""
	// How long the rendered home page is served from cache
	FEED_CACHE_SECONDS = 20
	LOG_FILE           = "" // Rotated log file, stderr only when empty
	CORS_ORIGINS       = "*"
	// Absolute links, e.g. in the RSS feed, are built on SITE_URL
	SITE_URL = "http://localhost:8080"
	// Largest accepted post form, image included
	MAX_UPLOAD_BYTES = 10 << 20
)

func init() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvInt("FEED_CACHE_SECONDS", &FEED_CACHE_SECONDS)
	readEnvString("LOG_FILE", &LOG_FILE)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvString("SITE_URL", &SITE_URL)
	readEnvInt("MAX_UPLOAD_BYTES", &MAX_UPLOAD_BYTES)
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
