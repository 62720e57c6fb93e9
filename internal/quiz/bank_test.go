package quiz

import "testing"

func TestBank(t *testing.T) {
	qs, err := Bank()
	if err != nil {
		t.Fatalf("Bank() returned error: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("Bank() length = %d, want 10", len(qs))
	}

	seen := make(map[int]bool)
	for i, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d: correctAnswer %d out of range [0,%d)", i, q.CorrectAnswer, len(q.Options))
		}
		if q.Text == "" {
			t.Errorf("question %d: empty text", i)
		}
	}
}

func TestLoadBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"missing field", `[{"id": 1, "text": "q"}]`},
		{"out of range answer", `[{"id":1,"text":"q","options":["a","b"],"correctAnswer":5,"explanation":"e"}]`},
		{"duplicate id", `[
			{"id":1,"text":"q","options":["a","b"],"correctAnswer":0,"explanation":"e"},
			{"id":1,"text":"q2","options":["a","b"],"correctAnswer":1,"explanation":"e"}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadBank([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
