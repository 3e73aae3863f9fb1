package tips

// DefaultTopic is asked about when the caller gives no topic.
const DefaultTopic = "abacus mental math and multiplication"

// Fallback is shown whenever no tip could be generated.
const Fallback = "Ready to master the abacus today?"

// Config holds tip generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI and the API.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   128,
		Temperature: 0.8,
	}
}
