package metadata

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `title,ark,description
Farm Journals,https://n2t.net/ark:/87292/w91,Daily records
Farm Journals,https://n2t.net/ark:/87292/w92,"Notes, with commas"
`

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if got := rows[0].Value("ark"); got != "https://n2t.net/ark:/87292/w91" {
		t.Errorf("rows[0][ark] = %q", got)
	}
	if got := rows[1].Value("description"); got != "Notes, with commas" {
		t.Errorf("rows[1][description] = %q, want %q", got, "Notes, with commas")
	}
}

func TestParseTrimsHeaders(t *testing.T) {
	input := " title , ark \nFarm Journals,w91\n"

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := rows[0].Value("title"); got != "Farm Journals" {
		t.Errorf("rows[0][title] = %q, want %q", got, "Farm Journals")
	}
}

func TestParseKeepsHeaderCase(t *testing.T) {
	input := "Title\nFarm Journals\n"

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, ok := rows[0].Lookup("title"); ok {
		t.Error("header case should be preserved, not folded")
	}
	if got := rows[0].Value("Title"); got != "Farm Journals" {
		t.Errorf("rows[0][Title] = %q, want %q", got, "Farm Journals")
	}
}

func TestParseShortRow(t *testing.T) {
	input := "title,ark,description\nFarm Journals,w91\n"

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, ok := rows[0].Lookup("description"); ok {
		t.Error("cells missing from a short row should be absent, not blank")
	}
	if got := rows[0].Value("ark"); got != "w91" {
		t.Errorf("rows[0][ark] = %q, want %q", got, "w91")
	}
}

func TestParseLongRow(t *testing.T) {
	input := "title,ark\nFarm Journals,w91,extra,cells\n"

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(rows[0]) != 2 {
		t.Errorf("len(rows[0]) = %d, want 2", len(rows[0]))
	}
}

func TestParseAliases(t *testing.T) {
	input := "Collection Title,Identifier\nFarm Journals,w91\n"

	opts := NewParseOptions()
	opts.Aliases = map[string]string{
		"Collection Title": "title",
		"Identifier":       "ark",
	}

	rows, err := Parse(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := rows[0].Value("title"); got != "Farm Journals" {
		t.Errorf("rows[0][title] = %q, want %q", got, "Farm Journals")
	}
	if got := rows[0].Value("ark"); got != "w91" {
		t.Errorf("rows[0][ark] = %q, want %q", got, "w91")
	}
}

func TestParseStripHTML(t *testing.T) {
	input := "description\n<p>Ada Field farmed near Boone.</p> <p>The collection contains her journals.</p>\n"

	opts := NewParseOptions()
	opts.StripHTML = true

	rows, err := Parse(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := "Ada Field farmed near Boone. The collection contains her journals."
	if got := rows[0].Value("description"); got != want {
		t.Errorf("rows[0][description] = %q, want %q", got, want)
	}
}

func TestParseNormalize(t *testing.T) {
	// "e" plus combining acute accent, as NFD-producing tools export it.
	input := "creator\nRené\n"

	opts := NewParseOptions()
	opts.Normalize = true

	rows, err := Parse(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := rows[0].Value("creator"); got != "René" {
		t.Errorf("rows[0][creator] = %q, want %q", got, "René")
	}
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rows != nil {
		t.Errorf("rows = %v, want nil", rows)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader("title,ark\n"), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestParseMultilineCell(t *testing.T) {
	input := "title,description\nFarm Journals,\"First line\nsecond line\"\n"

	rows, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := "First line\nsecond line"
	if got := rows[0].Value("description"); got != want {
		t.Errorf("rows[0][description] = %q, want %q", got, want)
	}
}
