package config

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost   string
	ServicePort   int
	PublicBaseURL string
	JWT           JWTConfig
	DB            DBConfig
	Upload        UploadConfig
	Admin         AdminConfig
}

type JWTConfig struct {
	Secret        string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type UploadConfig struct {
	Dir     string
	MaxSize int64 // bytes
}

// AdminConfig holds the credentials used to bootstrap the first admin
// account when the users table has none.
type AdminConfig struct {
	Email    string
	Password string
}

const (
	envDBHost     = "DB_HOST"
	envDBPort     = "DB_PORT"
	envDBUser     = "DB_USER"
	envDBPass     = "DB_PASSWORD"
	envDBName     = "DB_NAME"
	envDBSSLMode  = "DB_SSL_MODE"
	envJWTSecret  = "JWT_SECRET"
	envUploadDir  = "UPLOAD_DIR"
	envAdminEmail = "ADMIN_EMAIL"
	envAdminPass  = "ADMIN_PASSWORD"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = fmt.Sprintf("http://%s:%d", cfg.ServiceHost, cfg.ServicePort)
	}

	cfg.JWT = JWTConfig{
		Secret:        getEnv(envJWTSecret, "novita-travel-secret-key"),
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	cfg.DB = DBConfig{
		Host:     getEnv(envDBHost, "localhost"),
		Port:     getEnv(envDBPort, "5432"),
		User:     getEnv(envDBUser, "postgres"),
		Password: getEnv(envDBPass, ""),
		Name:     getEnv(envDBName, "novita_travel"),
		SSLMode:  getEnv(envDBSSLMode, "disable"),
	}

	cfg.Upload = UploadConfig{
		Dir:     getEnv(envUploadDir, "uploads"),
		MaxSize: 5 << 20, // 5 MiB
	}

	cfg.Admin = AdminConfig{
		Email:    getEnv(envAdminEmail, "admin@novitatravel.com"),
		Password: getEnv(envAdminPass, "admin123"),
	}

	log.Info("config parsed")

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
