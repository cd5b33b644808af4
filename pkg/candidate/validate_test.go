package candidate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scrapsterhq/scrapster/pkg/profile"
	"github.com/scrapsterhq/scrapster/pkg/vocab"
)

func TestIsGeneric(t *testing.T) {
	patterns := vocab.Default().GenericEmail

	tests := []struct {
		value string
		want  bool
	}{
		{"support@acme.com", true},
		{"info@acme.com", true},
		{"noreply@acme.com", true},
		{"NoReply@Acme.com", true},
		{"jane.noreply@acme.com", true}, // substring, not prefix
		{"test@acme.com", true},
		{"user@example.com", true},
		{"jane.smith@acme.com", false},
		{"bob@initech.io", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsGeneric(tt.value, patterns); got != tt.want {
				t.Errorf("IsGeneric(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNameTokens(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Jane Smith", []string{"jane", "smith"}},
		{"Jane Q. Smith", []string{"jane", "smith"}}, // initials dropped
		{"Li Wu", nil},                               // all tokens too short
		{"", nil},
		{"  Ada   Lovelace  ", []string{"ada", "lovelace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NameTokens(tt.name)); diff != "" {
				t.Errorf("NameTokens(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestIsProfileSpecific(t *testing.T) {
	tests := []struct {
		name  string
		value string
		pc    profile.Context
		want  bool
	}{
		{
			name:  "name token in local part",
			value: "jane.smith@randomhost.com",
			pc:    profile.Context{Name: "Jane Smith"},
			want:  true,
		},
		{
			name:  "company from context field in domain",
			value: "j.s@acmecorp.com",
			pc:    profile.Context{Name: "Jane Smith", Company: "Acme Corp"},
			want:  true,
		},
		{
			name:  "company derived from raw text",
			value: "hr@initech.com",
			pc:    profile.Context{Name: "Jane Smith", RawText: "Engineer at Initech since 2019"},
			want:  true,
		},
		{
			name:  "no name or company connection",
			value: "bob@other.com",
			pc:    profile.Context{Name: "Jane Smith", Company: "Acme"},
			want:  false,
		},
		{
			name:  "company squashes to nothing",
			value: "someone@anywhere.com",
			pc:    profile.Context{Name: "Li Wu", Company: "株式会社"},
			want:  false,
		},
		{
			name:  "empty value",
			value: "",
			pc:    profile.Context{Name: "Jane Smith"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProfileSpecific(tt.value, tt.pc); got != tt.want {
				t.Errorf("IsProfileSpecific(%q, %+v) = %v, want %v", tt.value, tt.pc, got, tt.want)
			}
		})
	}
}

func TestCompany(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Senior RF Engineer at Acme Corp, 8 years experience", "Acme"},
		{"Working @ Globex on wireless systems", "Globex"},
		{"Joined from Initech. Now independent.", "Initech"},
		{"works at acme", ""}, // lowercase never matches
		{"no employer mentioned", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Company(tt.text); got != tt.want {
				t.Errorf("Company(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
