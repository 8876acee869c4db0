package iso8601

// Version information for the iso8601 module.
const (
	// Version is the current version of the iso8601 module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
