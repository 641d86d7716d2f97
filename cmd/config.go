package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto Config: CUBOIDS_HTTP_PORT sets http_port.
const EnvPrefix = "CUBOIDS_"

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string `koanf:"http_port" validate:"required,numeric"`

	DBDriver   string `koanf:"db_driver" validate:"oneof=postgres sqlite"`
	DBHost     string `koanf:"db_host" validate:"required_if=DBDriver postgres"`
	DBPort     string `koanf:"db_port" validate:"required_if=DBDriver postgres"`
	DBUser     string `koanf:"db_user" validate:"required_if=DBDriver postgres"`
	DBPassword string `koanf:"db_password"`
	// DBName is the database name for postgres and the file path for sqlite.
	DBName    string `koanf:"db_name" validate:"required"`
	DBSslMode string `koanf:"db_sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	LogLevel  string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogPretty bool   `koanf:"log_pretty"`

	CapacityUpdateMode string `koanf:"capacity_update_mode" validate:"oneof=legacy exclude-self"`
	AuditSchedule      string `koanf:"audit_schedule" validate:"required"`
}

// DefaultConfig is what LoadConfig starts from before reading the environment.
func DefaultConfig() Config {
	return Config{
		HTTPPort:           "8080",
		DBDriver:           DBDriverPostgres,
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "postgres",
		DBName:             "cuboids",
		DBSslMode:          "disable",
		LogLevel:           "info",
		CapacityUpdateMode: "legacy",
		AuditSchedule:      "0 */5 * * * *",
	}
}

// LoadConfig reads an optional .env file from the working directory, then
// the CUBOIDS_ environment variables on top of DefaultConfig.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return loadEnv()
}

func loadEnv() (Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	config := DefaultConfig()
	if err = k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// PostgresDSN builds a libpq keyword/value connection string.
func (c Config) PostgresDSN() string {
	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	if c.DBSslMode != "" {
		parts = append(parts, "sslmode="+c.DBSslMode)
	}
	return strings.Join(parts, " ")
}
