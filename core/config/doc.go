// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally overlaid by a
// local .env file (loaded through godotenv). Defaults are declared as
// 'default' struct tags on the partial configuration structs and bound into
// Viper via reflection, so every key exists even when no environment is set.
//
// # Structure
//
// The top-level Config embeds one partial configuration per concern:
//
//   - Server: HTTP port, serving root and index file (core/server)
//   - Log: level and encoding of the logger (core/logger)
//
// # Environment mapping
//
// Nested keys map to underscore-separated environment variables, e.g.
// server.port is read from SERVER_PORT and log.level from LOG_LEVEL.
//
// The defaults reproduce the fixed behavior of the tool out of the box:
// port 8080, the process working directory as the serving root.
package config
