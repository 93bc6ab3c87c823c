package helpers

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase phrase",
			input: "the end of the road",
			want:  "The End of the Road",
		},
		{
			name:  "uppercase input",
			input: "IOWA STATE FAIR",
			want:  "Iowa State Fair",
		},
		{
			name:  "contraction",
			input: "wasn't that a time",
			want:  "Wasn't that a Time",
		},
		{
			name:  "possessive",
			input: "smith's farm ledgers",
			want:  "Smith's Farm Ledgers",
		},
		{
			name:  "initialism with periods",
			input: "u.s. government documents",
			want:  "U.S. Government Documents",
		},
		{
			name:  "hyphenated word",
			input: "4-h club records",
			want:  "4-H Club Records",
		},
		{
			name:  "parenthetical place",
			input: "boone county (iowa)",
			want:  "Boone County (Iowa)",
		},
		{
			name:  "stopword first and last",
			input: "of mice and men",
			want:  "Of Mice and Men",
		},
		{
			name:  "stopword last kept",
			input: "the war of the worlds",
			want:  "The War of the Worlds",
		},
		{
			name:  "single stopword",
			input: "a",
			want:  "A",
		},
		{
			name:  "leading apostrophe",
			input: "'tis the season",
			want:  "'tis the Season",
		},
		{
			name:  "collapses whitespace",
			input: "  farm   journals  ",
			want:  "Farm Journals",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleCase(tt.input)
			if got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
