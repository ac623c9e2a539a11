package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// StreamJSON writes each JSON document as it is produced instead of one object at exit
	StreamJSON bool

	// ShowSlots prints the slot-index grid alongside the piece diagram
	ShowSlots bool

	// ShowFEN prints the FEN of each displayed position
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowFEN: true,
	}
}
