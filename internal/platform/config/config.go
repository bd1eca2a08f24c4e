package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin, created only when the users table is empty.
	BootstrapAdminUsername string
	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	// Google Drive backup
	BackupEnabled          bool
	BackupDir              string
	BackupDriveFolderID    string `mapstructure:"BACKUP_DRIVE_FOLDER_ID"`
	BackupCredentialsFile  string `mapstructure:"BACKUP_CREDENTIALS_FILE"`
	BackupRetentionCount   int
	BackupScheduleInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "dev-secret-key-change-in-production")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "defter-backend")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("BACKUP_ENABLED", false)
	viper.SetDefault("BACKUP_DIR", "backup")
	viper.SetDefault("BACKUP_DRIVE_FOLDER_ID", "")
	viper.SetDefault("BACKUP_CREDENTIALS_FILE", "")
	viper.SetDefault("BACKUP_RETENTION_COUNT", 30)
	viper.SetDefault("BACKUP_SCHEDULE_INTERVAL", "24h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "dev-secret-key-change-in-production" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminEmail = viper.GetString("BOOTSTRAP_ADMIN_EMAIL")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")

	cfg.BackupEnabled = viper.GetBool("BACKUP_ENABLED")
	cfg.BackupDir = viper.GetString("BACKUP_DIR")
	cfg.BackupDriveFolderID = viper.GetString("BACKUP_DRIVE_FOLDER_ID")
	cfg.BackupCredentialsFile = viper.GetString("BACKUP_CREDENTIALS_FILE")
	cfg.BackupRetentionCount = viper.GetInt("BACKUP_RETENTION_COUNT")

	backupIntervalStr := viper.GetString("BACKUP_SCHEDULE_INTERVAL")
	backupInterval, err := time.ParseDuration(backupIntervalStr)
	if err != nil {
		backupInterval = 24 * time.Hour
		log.Printf("Warning: Invalid value for BACKUP_SCHEDULE_INTERVAL ('%s'). Defaulting to %s.\n", backupIntervalStr, backupInterval.String())
	}
	cfg.BackupScheduleInterval = backupInterval

	if cfg.BackupEnabled && (cfg.BackupDriveFolderID == "" || cfg.BackupCredentialsFile == "") {
		log.Println("Warning: BACKUP_ENABLED is set but BACKUP_DRIVE_FOLDER_ID or BACKUP_CREDENTIALS_FILE is missing. Drive upload will be skipped.")
	}

	return cfg, nil
}
