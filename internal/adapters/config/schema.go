package config

// Reachfile represents the structure of the reach.yaml (or reach.toml) configuration file.
type Reachfile struct {
	Version string   `yaml:"version" toml:"version"`
	Schema  []string `yaml:"schema"  toml:"schema"`
	Retain  []string `yaml:"retain"  toml:"retain"`
	Ignore  []string `yaml:"ignore"  toml:"ignore"`
	Cache   *string  `yaml:"cache"   toml:"cache"`
	Format  string   `yaml:"format"  toml:"format"`
}
