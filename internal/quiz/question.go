package quiz

// Question is one entry in the fixed assessment battery.
// Records are immutable; the bank is consumed read-only.
type Question struct {
	ID                int      `json:"id"`
	Text              string   `json:"text"`
	Options           []string `json:"options"`
	CorrectAnswer     int      `json:"correctAnswer"`
	Explanation       string   `json:"explanation"`
	Image             string   `json:"image,omitempty"`
	RequiresReasoning bool     `json:"requiresReasoning,omitempty"`
}
