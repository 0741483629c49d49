// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Server Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Config fields:

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite path/DSN or PostgreSQL connection string (required)
  - DatabaseType: sqlite (default), postgres (lib/pq) or pgx (jackc/pgx)
  - EditKeySalt: Secret for observation edit key HMAC (required)

CLI flags:

	-p          Server port
	-d          Database URL
	-t          Database type
	-edit-salt  Edit key salt

Environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	EDIT_KEY_SALT → -edit-salt

CLI flags take precedence over environment variables. Call LoadDotEnv
first to populate the environment from a .env file during development.

# Client Configuration

ParseClientFlags reads the observer CLI's global flags and returns the
remaining arguments:

	cfg, rest, err := cliparse.ParseClientFlags(os.Args[1:])

  - ServerURL (-server, OBSERVER_SERVER_URL): API base URL
    (default: http://localhost:8000)
  - IdentityFile (-identity, OBSERVER_IDENTITY_FILE): persisted username
    (default: <user config dir>/boswachter/identity.json)
*/
package cliparse
