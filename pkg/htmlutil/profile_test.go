package htmlutil

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jane Smith | LinkedIn", "Jane Smith"},
		{"Jane Smith - RFID Engineer - Acme", "Jane Smith"},
		{"Jane Smith - RFID Engineer | LinkedIn", "Jane Smith"},
		{"Jane Smith", "Jane Smith"},
		{"", "Unknown"},
		{"   ", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Name(tt.title); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestLooksLikeCompany(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Acme Inc.", true},
		{"Initech LLC", true},
		{"Globex Corporation", true},
		{"Jane Smith", false},
		{"Incline Village", false}, // "Inc." needs its period
	}

	for _, tt := range tests {
		if got := LooksLikeCompany(tt.name); got != tt.want {
			t.Errorf("LooksLikeCompany(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestJobTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  string
	}{
		{
			name:  "compound title from text",
			title: "",
			text:  "Jane is a Senior Wireless Engineer at Acme.",
			want:  "Senior Wireless Engineer",
		},
		{
			name:  "title from page title",
			title: "Jane Smith - Product Manager",
			text:  "",
			want:  "Product",
		},
		{
			name:  "bare role word",
			title: "",
			text:  "Consultant focused on embedded systems.",
			want:  "Consultant",
		},
		{
			name:  "no title present",
			title: "Jane Smith",
			text:  "Loves gardening and chess.",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JobTitle(tt.title, tt.text); got != tt.want {
				t.Errorf("JobTitle(%q, %q) = %q, want %q", tt.title, tt.text, got, tt.want)
			}
		})
	}
}
