package domain

// Output formats understood by the renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultCachePath is where reports are stored unless the config says otherwise.
const DefaultCachePath = ".reach/reports.json"

// Config is the resolved project configuration.
type Config struct {
	Version string
	// Root is the directory schema patterns are resolved against.
	Root string
	// Schema lists glob patterns of SDL files.
	Schema []string
	// Retain lists type names that are always treated as reachable.
	Retain []string
	// Ignore lists glob patterns of type names never reported as unreachable.
	Ignore []string
	// Cache is the report store path. Empty disables the store.
	Cache  string
	Format string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Root:    ".",
		Cache:   DefaultCachePath,
		Format:  FormatText,
	}
}
