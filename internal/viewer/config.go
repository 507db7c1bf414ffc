package viewer

// Config holds viewer configuration options.
type Config struct {
	// MapName selects an embedded sample map by file name.
	// Ignored when MapPath is set.
	MapName string

	// MapPath loads a map from the host filesystem instead of the
	// embedded samples.
	MapPath string

	// Generate builds a random map instead of loading one.
	Generate bool

	// Seed for random map generation. A seed of 0 means a random seed
	// will be used.
	Seed int64
}
