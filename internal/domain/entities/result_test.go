package entities

import "testing"

func TestNewQuizResult(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		total      int
		percentage int
		badge      Badge
	}{
		{"perfect", 10, 10, 100, BadgePerfect},
		{"great", 8, 10, 80, BadgeGreat},
		{"good", 6, 10, 60, BadgeGood},
		{"keep on", 5, 10, 50, BadgeKeepOn},
		{"zero", 0, 10, 0, BadgeKeepOn},
		{"rounded up", 2, 3, 67, BadgeGood},
		{"rounded down", 1, 3, 33, BadgeKeepOn},
		{"empty quiz", 0, 0, 0, BadgeKeepOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewQuizResult(tt.score, tt.total)
			if r.Score != tt.score || r.Total != tt.total {
				t.Fatalf("result carries %d/%d, want %d/%d", r.Score, r.Total, tt.score, tt.total)
			}
			if r.Percentage != tt.percentage {
				t.Fatalf("percentage = %d, want %d", r.Percentage, tt.percentage)
			}
			if r.Badge != tt.badge {
				t.Fatalf("badge = %q, want %q", r.Badge, tt.badge)
			}
		})
	}
}

func TestQuizTypeValid(t *testing.T) {
	for _, valid := range []QuizType{QuizTypeTranslation, QuizTypePhonetic, QuizTypeOrdering, QuizTypeRandom} {
		if !valid.Valid() {
			t.Errorf("%s reported invalid", valid)
		}
	}
	if QuizType("BOGUS").Valid() {
		t.Error("bogus type reported valid")
	}
}
