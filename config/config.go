package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true

	// Object storage. If S3_BUCKET is empty, photos are stored under DISK_STORAGE_DIR
	S3_BUCKET        = ""
	S3_REGION        = "us-east-1"
	S3_ENDPOINT      = "" // Optional, for S3-compatible stores (MinIO, etc)
	S3_PREFIX        = "" // Optional key prefix inside the bucket
	DISK_STORAGE_DIR = "/var/lib/photoserver"

	// Label detection. Requires S3 storage, as labels are detected on the stored object
	LABEL_DETECT         = true
	LABEL_MAX            = 10
	LABEL_MIN_CONFIDENCE = 75.0

	SESSION_KEY = "" // Session store key, required in production
)

func init() {
	Load()
}

// Load re-reads all configuration from the environment.
func Load() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("DISK_STORAGE_DIR", &DISK_STORAGE_DIR)
	readEnvBool("LABEL_DETECT", &LABEL_DETECT)
	readEnvInt("LABEL_MAX", &LABEL_MAX)
	readEnvFloat("LABEL_MIN_CONFIDENCE", &LABEL_MIN_CONFIDENCE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
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

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
