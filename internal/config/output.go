package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output format (SAN or JSON)
	Format OutputFormat

	// MaxLineLength is the maximum line length for SAN output; 0 disables wrapping
	MaxLineLength uint

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// KeepAnnotations controls whether move-quality suffixes (!, ?, ...) are included
	KeepAnnotations bool

	// KeepErrors writes tokens that failed to parse into the output unchanged
	KeepErrors bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepChecks:      true,
		KeepAnnotations: true,
	}
}
