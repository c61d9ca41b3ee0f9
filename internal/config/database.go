package config

// DatabaseConfig holds MongoDB connection configuration
type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
}

// RedisConfig holds the optional AI response cache connection.
// An empty address disables caching.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}
