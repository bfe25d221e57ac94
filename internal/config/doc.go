// Package config manages application configuration for the phonebook API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // every problem, joined
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - PhonebookConfig: request validation switches
//   - LogConfig: logger level and format
//
// # Environment Variables
//
//	PORT                  - HTTP server port (default: 3001)
//	SERVER_ENV            - development, production or test
//	CORS_ALLOWED_ORIGINS  - comma separated (default: *)
//	DB_URL                - full SurrealDB endpoint, overrides DB_HOST/DB_PORT
//	DB_HOST, DB_PORT      - SurrealDB address (default: localhost:8000)
//	DB_NAMESPACE          - namespace (default: phonebook)
//	DB_DATABASE           - database (default: main)
//	DB_USER, DB_PASSWORD  - credentials
//	REQUIRE_NUMBER        - reject creates without a number (default: true)
//	LOG_LEVEL             - logger level (default: info)
//	LOG_FORMAT            - json or text (default: text in development, json otherwise)
package config
