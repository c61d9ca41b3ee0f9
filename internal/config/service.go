package config

type ServiceConfig struct {
	Name        string    `yaml:"name"`
	Environment string    `yaml:"environment"`
	Version     string    `yaml:"version"`
	ClientURL   string    `yaml:"client_url"`
	LLM         LLMConfig `yaml:"llm"`
}

// LLMConfig configures the external decomposition/insight model.
type LLMConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}
