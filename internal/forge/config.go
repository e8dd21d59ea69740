package forge

// Config holds generation settings for the in-process endpoint.
type Config struct {
	LessonMaxTokens   int
	PracticeMaxTokens int
	Temperature       float64
}

// DefaultConfig returns sensible defaults. Lessons and practice
// batches are long-form output, so the token caps are high.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens:   4096,
		PracticeMaxTokens: 8192,
		Temperature:       0.5,
	}
}
