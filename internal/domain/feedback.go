package domain

// FeedbackEntry is one adaptive-cache record, created by positive user
// feedback and removed by negative feedback. The stored Method is always
// "user_feedback"; lookups report MethodAdaptiveCache to callers.
type FeedbackEntry struct {
	Translation   string  `json:"translation"`
	Confidence    float64 `json:"confidence"`
	Method        string  `json:"method"`
	FeedbackCount int     `json:"feedback_count"`
}

// FeedbackMethod is the Method value stored in persisted feedback entries.
const FeedbackMethod = "user_feedback"

// FeedbackKey builds the cache key for a raw (trimmed, unnormalized) query
// and direction. The same format is used in the persisted JSON file.
func FeedbackKey(rawQuery string, direction Direction) string {
	return rawQuery + ":" + string(direction)
}
