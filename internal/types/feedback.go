package types

// Feedback is the structured critique returned by the essay reviewer model.
// It is transient: it only persists when explicitly attached to a version.
type Feedback struct {
	Tone         string   `json:"tone"`
	Clarity      string   `json:"clarity"`
	Storytelling string   `json:"storytelling"`
	Suggestions  []string `json:"suggestions"`
	OverallScore int      `json:"overallScore"`
}
