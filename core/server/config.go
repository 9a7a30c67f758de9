package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Root is the directory files are served from.
	Root string `mapstructure:"root" default:"."`
	// Index is the file served for directory requests.
	Index string `mapstructure:"index" default:"index.html"`
}

// Addr returns the listen address, binding all interfaces.
func (c Config) Addr() string {
	return ":" + c.Port
}

// URL returns the address a local browser reaches the server at.
func (c Config) URL() string {
	return "http://localhost:" + c.Port
}
