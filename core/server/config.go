package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, which carry whole snapshots.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 8 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
