package candidate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain address in prose",
			text: "Reach me at jane.smith@acme.com for consulting work.",
			want: []string{"jane.smith@acme.com"},
		},
		{
			name: "multiple distinct addresses",
			text: "jane@acme.com, bob@initech.io",
			want: []string{"jane@acme.com", "bob@initech.io"},
		},
		{
			name: "case variants collapse to first seen",
			text: "Jane.Smith@Acme.com or jane.smith@acme.com or JANE.SMITH@ACME.COM",
			want: []string{"Jane.Smith@Acme.com"},
		},
		{
			name: "address with plus and percent",
			text: "jane+tag@acme.com j%40ne@acme.co",
			want: []string{"jane+tag@acme.com", "j%40ne@acme.co"},
		},
		{
			name: "trailing sentence punctuation excluded",
			text: "Email jane@acme.com.",
			want: []string{"jane@acme.com"},
		},
		{
			name: "single letter TLD rejected",
			text: "not-valid@host.x",
			want: nil,
		},
		{
			name: "embedded in JSON",
			text: `{"contact":{"emailAddress":"jane@acme.com"}}`,
			want: []string{"jane@acme.com"},
		},
		{
			name: "no addresses",
			text: "nothing to see here",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, PageText)
			var values []string
			for _, c := range got {
				values = append(values, c.Value)
				if c.Provenance != PageText {
					t.Errorf("Extract(%q) candidate %q provenance = %v, want PageText", tt.text, c.Value, c.Provenance)
				}
			}
			if diff := cmp.Diff(tt.want, values); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"jane@acme.com", true},
		{"jane.smith@sub.acme.co", true},
		{"jane@acme", false},
		{"jane@acme.x", false},
		{"not an email", false},
		{"jane@acme.com extra", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := Valid(tt.value); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestProvenanceString(t *testing.T) {
	tests := []struct {
		prov Provenance
		want string
	}{
		{PageText, "page_text"},
		{SectionText, "section_text"},
		{ShadowDOM, "shadow_dom"},
		{Modal, "modal"},
		{NetworkIntercept, "network_intercept"},
		{URL, "url"},
		{Inferred, "inferred"},
		{Provenance(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.prov.String(); got != tt.want {
			t.Errorf("Provenance(%d).String() = %q, want %q", tt.prov, got, tt.want)
		}
	}
}
