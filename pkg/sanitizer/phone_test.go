package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+2348031234567",
			want:  "+2348031234567",
		},
		{
			name:  "with spaces",
			input: "+234 803 123 4567",
			want:  "+2348031234567",
		},
		{
			name:  "with dashes",
			input: "+234-803-123-4567",
			want:  "+2348031234567",
		},
		{
			name:  "national format gets default region",
			input: "0803 123 4567",
			want:  "+2348031234567",
		},
		{
			name:  "foreign number keeps its region",
			input: "+1 (212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +2348031234567  ",
			want:  "+2348031234567",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "unparseable input",
			input: "call me maybe",
			want:  "",
		},
		{
			name:  "too short to be valid",
			input: "+23480",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
