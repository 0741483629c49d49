package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported DATABASE_TYPE values
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabasePGX      = "pgx"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	EditKeySalt  string
}

type ClientConfig struct {
	ServerURL    string
	IdentityFile string
}

// LoadDotEnv loads a .env file into the environment if one exists.
// Variables already set are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("boswachter", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.EditKeySalt, "edit-salt", "", "Edit key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabasePGX:
	default:
		return Config{}, errors.New("DATABASE_TYPE must be one of: sqlite, postgres, pgx")
	}

	// Secrets - MUST be provided
	if cfg.EditKeySalt == "" {
		cfg.EditKeySalt = os.Getenv("EDIT_KEY_SALT")
	}
	if cfg.EditKeySalt == "" {
		return Config{}, errors.New("EDIT_KEY_SALT required")
	}

	return cfg, nil
}

// ParseClientFlags reads the field client's global flags. The remaining
// arguments (subcommand and its flags) are returned untouched.
func ParseClientFlags(args []string) (ClientConfig, []string, error) {
	var cfg ClientConfig

	fs := flag.NewFlagSet("observer", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "server", "", "Observation API base URL")
	fs.StringVar(&cfg.IdentityFile, "identity", "", "Path of the local identity file")

	if err := fs.Parse(args); err != nil {
		return ClientConfig{}, nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = os.Getenv("OBSERVER_SERVER_URL")
		if cfg.ServerURL == "" {
			cfg.ServerURL = "http://localhost:8000"
		}
	}

	if cfg.IdentityFile == "" {
		cfg.IdentityFile = os.Getenv("OBSERVER_IDENTITY_FILE")
	}
	if cfg.IdentityFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ClientConfig{}, nil, errors.New("identity file required (use -identity or OBSERVER_IDENTITY_FILE env)")
		}
		cfg.IdentityFile = dir + string(os.PathSeparator) + "boswachter" + string(os.PathSeparator) + "identity.json"
	}

	return cfg, fs.Args(), nil
}
