package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	defaultMaxUploadBytes = 50 << 20
)

type Config struct {
	AppName           string
	AppVersion        string
	AppEnv            string
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	DbMaxOpenConns    int
	TrustedProxies    []string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	JwtAccessSecret   string
	JwtRefreshSecret  string
	JwtAccessTTL      time.Duration
	JwtRefreshTTL     time.Duration
	RefreshCookieTTL  time.Duration
	CookieSecure      bool
	BcryptCost        int
	UploadDir         string
	MaxUploadBytes    int64
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:           getEnv("APP_NAME", "nestodo"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AppEnv:            getEnv("APP_ENV", "development"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "nestodo"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "nestodo"),
		DbName:            getEnv("MYSQL_DATABASE", "nestodo"),
		DbParams:          getEnv("MYSQL_PARAMS", ""),
		DbMaxOpenConns:    getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		RedisHost:         getEnv("REDIS_HOST", "redis"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		JwtAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JwtRefreshSecret:  os.Getenv("JWT_REFRESH_SECRET"),
		JwtAccessTTL:      getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", 15*time.Minute),
		JwtRefreshTTL:     getEnvDuration("JWT_REFRESH_EXPIRATION_TIME", 7*24*time.Hour),
		RefreshCookieTTL:  time.Duration(getEnvInt("REFRESH_TOKEN_COOKIE_MAX_AGE_HOURS", 7*24)) * time.Hour,
		CookieSecure:      getEnvBool("COOKIE_SECURE", true),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JwtAccessSecret == "" {
		errs = append(errs, errors.New("JWT_ACCESS_SECRET is not set"))
	}
	if c.JwtRefreshSecret == "" {
		errs = append(errs, errors.New("JWT_REFRESH_SECRET is not set"))
	}
	if c.JwtAccessSecret != "" && c.JwtAccessSecret == c.JwtRefreshSecret {
		errs = append(errs, errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ"))
	}
	if c.JwtAccessTTL <= 0 || c.JwtRefreshTTL <= 0 {
		errs = append(errs, errors.New("JWT expiration times must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
