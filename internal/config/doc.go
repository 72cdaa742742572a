// Package config manages application configuration for the Codex server.
//
// Configuration is loaded from environment variables into struct-tagged
// groups and validated once at startup:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, cookie policy)
//   - BackendConfig: content backend connection settings
//
// # Environment Variables
//
//	SERVER_PORT            - HTTP server port (default: 8080)
//	SERVER_ENV             - development, production, or test (default: development)
//	SERVER_READ_TIMEOUT    - request read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT   - response write timeout (default: 15s)
//	SERVER_SECURE_COOKIES  - set the Secure flag on session cookies
//	CODEX_BACKEND_URL      - content backend base URL (default: http://localhost:1337)
//	CODEX_BACKEND_TIMEOUT  - per-request backend timeout (default: 10s)
package config
