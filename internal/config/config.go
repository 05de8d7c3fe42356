package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Port        int
	Env         string
	LogLevel    string
	CompanyName string
	CORSOrigins []string
}

// PayrollConfig holds the jurisdiction rule set. Defaults follow UAE labour
// law; every constant can be overridden per deployment.
type PayrollConfig struct {
	HoursPerMonth             decimal.Decimal
	DaysPerMonth              decimal.Decimal
	OvertimeNormalMultiplier  decimal.Decimal
	OvertimeNightMultiplier   decimal.Decimal
	OvertimeHolidayMultiplier decimal.Decimal
	GratuityTier1Years        decimal.Decimal
	GratuityTier1Days         decimal.Decimal
	GratuityTier2Days         decimal.Decimal
	GratuityCapMonths         decimal.Decimal
}

// Rules converts the configured constants into the calculation rule set.
func (p PayrollConfig) Rules() payroll.Rules {
	return payroll.Rules{
		HoursPerMonth:             p.HoursPerMonth,
		DaysPerMonth:              p.DaysPerMonth,
		OvertimeNormalMultiplier:  p.OvertimeNormalMultiplier,
		OvertimeNightMultiplier:   p.OvertimeNightMultiplier,
		OvertimeHolidayMultiplier: p.OvertimeHolidayMultiplier,
		GratuityTiers: []payroll.GratuityTier{
			{UpToYears: p.GratuityTier1Years, DaysPerYear: p.GratuityTier1Days},
			{DaysPerYear: p.GratuityTier2Days},
		},
		GratuityCapMonths: p.GratuityCapMonths,
	}
}

func Load() (*Config, error) {
	// Missing .env is fine; environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "hrms-backend"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CompanyName: getEnv("COMPANY_NAME", "Atlas HR"),
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll rules
	config.Payroll, err = loadPayrollConfig()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	defaults := payroll.UAERules()

	cfg := PayrollConfig{}
	fields := []struct {
		dest     *decimal.Decimal
		env      string
		fallback decimal.Decimal
	}{
		{&cfg.HoursPerMonth, "PAYROLL_HOURS_PER_MONTH", defaults.HoursPerMonth},
		{&cfg.DaysPerMonth, "PAYROLL_DAYS_PER_MONTH", defaults.DaysPerMonth},
		{&cfg.OvertimeNormalMultiplier, "PAYROLL_OT_NORMAL_MULTIPLIER", defaults.OvertimeNormalMultiplier},
		{&cfg.OvertimeNightMultiplier, "PAYROLL_OT_NIGHT_MULTIPLIER", defaults.OvertimeNightMultiplier},
		{&cfg.OvertimeHolidayMultiplier, "PAYROLL_OT_HOLIDAY_MULTIPLIER", defaults.OvertimeHolidayMultiplier},
		{&cfg.GratuityTier1Years, "PAYROLL_GRATUITY_TIER1_YEARS", defaults.GratuityTiers[0].UpToYears},
		{&cfg.GratuityTier1Days, "PAYROLL_GRATUITY_TIER1_DAYS", defaults.GratuityTiers[0].DaysPerYear},
		{&cfg.GratuityTier2Days, "PAYROLL_GRATUITY_TIER2_DAYS", defaults.GratuityTiers[1].DaysPerYear},
		{&cfg.GratuityCapMonths, "PAYROLL_GRATUITY_CAP_MONTHS", defaults.GratuityCapMonths},
	}

	for _, f := range fields {
		raw := os.Getenv(f.env)
		if raw == "" {
			*f.dest = f.fallback
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dest = value
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if err := c.Payroll.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid payroll rules: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
