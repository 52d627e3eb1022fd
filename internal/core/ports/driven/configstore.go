package driven

// ConfigStore persists settings as dot-notation keys (e.g. "dice.sides").
// Implementations handle storage format and type conversion.
type ConfigStore interface {
	// Get retrieves a value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load reads the stored values, replacing those in memory.
	Load() error

	// Path returns where values are stored.
	Path() string
}
