package config

// DefaultPath is where the client looks for configuration by default.
const DefaultPath = ".quizren.yml"

// defaultTimeoutSeconds mirrors the upstream service's client timeout.
const defaultTimeoutSeconds = 30

// Config holds host configuration for the quiz client. Endpoint and item id
// may instead arrive as command flags; validation of their presence happens
// after the merge, before the pipeline runs.
type Config struct {
	Endpoint       string   `yaml:"endpoint"`
	ItemID         string   `yaml:"item_id"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	UI             UIConfig `yaml:"ui"`
}

// UIConfig selects the presentation mode.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TimeoutSeconds: defaultTimeoutSeconds,
		UI:             UIConfig{Mode: "auto"},
	}
}
