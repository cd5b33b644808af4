package relevance

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "splits phrases and drops short tokens",
			keywords: []string{"RFID engineer"},
			want:     []string{"rfid", "engineer"},
		},
		{
			name:     "stopwords removed",
			keywords: []string{"engineer for the IoT industry"},
			want:     []string{"engineer", "iot", "industry"},
		},
		{
			name:     "duplicates collapse preserving order",
			keywords: []string{"RFID systems", "systems engineer"},
			want:     []string{"rfid", "systems", "engineer"},
		},
		{
			name:     "punctuation separators",
			keywords: []string{"wireless,embedded.firmware-design"},
			want:     []string{"wireless", "embedded", "firmware", "design"},
		},
		{
			name:     "empty input",
			keywords: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Terms(tt.keywords)); diff != "" {
				t.Errorf("Terms(%v) mismatch (-want +got):\n%s", tt.keywords, diff)
			}
		})
	}
}

func TestScoreRelevantProfile(t *testing.T) {
	s := NewScorer([]string{"RFID engineer"})
	pc := profile.Context{
		Name:     "Jane Smith",
		JobTitle: "RFID Engineer",
		RawText:  "Jane Smith is a senior RFID engineer with 10 years experience in wireless systems.",
	}

	score, reason := s.Score(pc)
	if score < s.MinScore() {
		t.Errorf("Score() = %v, want >= %v", score, s.MinScore())
	}
	if !strings.Contains(reason, "keyword match") {
		t.Errorf("Score() reason = %q, want keyword match mention", reason)
	}
}

func TestScoreHardRejects(t *testing.T) {
	s := NewScorer([]string{"RFID engineer"})

	tests := []struct {
		name       string
		text       string
		wantReason string
	}{
		{
			name:       "product listing vocabulary",
			text:       "Buy RFID blocking wallet now! Best price, free shipping on every order.",
			wantReason: "selling products",
		},
		{
			name:       "single product indicator",
			text:       "RFID engineer portfolio. Add to cart to support my work.",
			wantReason: "product listing",
		},
		{
			name:       "company page phrases",
			text:       "About us: our team of RFID engineers. Contact us for careers.",
			wantReason: "company page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reason := s.Score(profile.Context{RawText: tt.text})
			if score != 0 {
				t.Errorf("Score() = %v, want 0", score)
			}
			if !strings.Contains(reason, tt.wantReason) {
				t.Errorf("Score() reason = %q, want substring %q", reason, tt.wantReason)
			}
		})
	}
}

func TestScoreNoKeywordPenalty(t *testing.T) {
	s := NewScorer([]string{"RFID engineer"})
	pc := profile.Context{
		Name:    "Bob Jones",
		RawText: "Accomplished watercolor painter with experience exhibiting at university galleries.",
	}

	score, _ := s.Score(pc)
	if score >= s.MinScore() {
		t.Errorf("Score() = %v for keyword-free profile, want < %v", score, s.MinScore())
	}
	if score == 0 {
		t.Error("Score() = 0, want small nonzero score from professional vocabulary")
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := NewScorer([]string{"RFID engineer"})
	score, reason := s.Score(profile.Context{Name: "Jane Smith"})
	if score != 0 {
		t.Errorf("Score() = %v, want 0", score)
	}
	if reason != "No profile text available" {
		t.Errorf("Score() reason = %q", reason)
	}
}

func TestScoreIsClamped(t *testing.T) {
	s := NewScorer([]string{"engineer"})
	pc := profile.Context{
		JobTitle: "Senior Engineer",
		Company:  "Engineer Co",
		RawText: "Principal engineer, lead architect, senior manager, director of research," +
			" consultant, analyst, scientist, years of experience, skills, certification.",
	}
	score, _ := s.Score(pc)
	if score > 1 {
		t.Errorf("Score() = %v, want <= 1", score)
	}
}
