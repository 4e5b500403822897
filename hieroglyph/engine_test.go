package hieroglyph

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single letter", "a", "\U0001313F"},
		{"hello", "hello", "\U00013254\U000131CB\U000130ED\U000130ED\U00013171"},
		{"digits", "123", "\U000133FA\U000133FB\U000133FC"},
		{"punctuation becomes stroke", "a.", "\U0001313F" + Placeholder},
		{"space kept", "a b", "\U0001313F \U000130C0"},
		{"tab becomes space", "a\tb", "\U0001313F \U000130C0"},
		{"apostrophe silent", "it's", "\U000131CB\U000133CF\U000132F4"},
		{"unsupported uses placeholder", "a@", "\U0001313F" + Placeholder},
		{"non-latin uses placeholder", "ж", Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_HelloIsConcatenationOfLetters(t *testing.T) {
	var want strings.Builder
	for _, r := range "hello" {
		e, ok := LookupEntry(r)
		if !ok {
			t.Fatalf("LookupEntry(%q) missing", r)
		}
		want.WriteString(e.Glyph)
	}

	if got := Convert("hello"); got != want.String() {
		t.Errorf("Convert(hello) = %q, want %q", got, want.String())
	}
}

func TestConvert_CaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"Hello", "hello"},
		{"EGYPT", "egypt"},
		{"PyRaMiD", "pyramid"},
	}
	for _, p := range pairs {
		if a, b := Convert(p[0]), Convert(p[1]); a != b {
			t.Errorf("Convert(%q) = %q, Convert(%q) = %q", p[0], a, p[1], b)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	input := "Amazing discovery 123!"
	first := Convert(input)
	for i := 0; i < 10; i++ {
		if got := Convert(input); got != first {
			t.Fatalf("call %d: Convert(%q) = %q, first call gave %q", i, input, got, first)
		}
	}
}

func TestConvert_MixedCategories(t *testing.T) {
	input := "Hi! 3"
	bd := Explain(input)
	if len(bd) != 5 {
		t.Fatalf("Explain(%q) returned %d entries, want 5", input, len(bd))
	}

	wantCats := []Category{Letter, Letter, Punctuation, Whitespace, Digit}
	for i, be := range bd {
		if !be.Matched {
			t.Errorf("entry %d (%q) unmatched", i, be.Input)
			continue
		}
		if be.Entry.Category != wantCats[i] {
			t.Errorf("entry %d (%q) category = %v, want %v", i, be.Input, be.Entry.Category, wantCats[i])
		}
	}

	want := "\U00013254\U000131CB" + Placeholder + " \U000133FC"
	if got := Convert(input); got != want {
		t.Errorf("Convert(%q) = %q, want %q", input, got, want)
	}
}

func TestExplain_LengthMatchesRunes(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"hello world",
		"Ünïcödé ✓",
		"日本語",
		"it's \"quoted\"",
		"line\nbreak",
		string([]byte{0xff, 'a'}), // invalid UTF-8
	}

	for _, in := range inputs {
		res := Translate(in)
		n := utf8.RuneCountInString(in)
		if len(res.Breakdown) != n {
			t.Errorf("Translate(%q) breakdown has %d entries, want %d", in, len(res.Breakdown), n)
		}
		if len(res.Glyphs) != n {
			t.Errorf("Translate(%q) has %d glyph units, want %d", in, len(res.Glyphs), n)
		}
	}
}

func TestExplain_Hello(t *testing.T) {
	bd := Explain("hello")
	if len(bd) != 5 {
		t.Fatalf("Explain(hello) returned %d entries, want 5", len(bd))
	}
	for i, be := range bd {
		if !be.Matched {
			t.Errorf("entry %d (%q) unmatched", i, be.Input)
		}
	}

	l1, l2 := bd[2], bd[3]
	if l1.Glyph != l2.Glyph || l1.Meaning != l2.Meaning || *l1.Entry != *l2.Entry {
		t.Errorf("breakdowns for the two l's differ: %+v vs %+v", l1, l2)
	}
	if l1.Meaning != "Lion" {
		t.Errorf("meaning for l = %q, want Lion", l1.Meaning)
	}
}

func TestExplain_Unmatched(t *testing.T) {
	bd := Explain("a#")
	be := bd[1]

	if be.Matched {
		t.Fatalf("'#' reported as matched")
	}
	if be.Entry != nil {
		t.Errorf("'#' has entry %+v, want nil", *be.Entry)
	}
	if be.Meaning != "" {
		t.Errorf("'#' meaning = %q, want empty", be.Meaning)
	}
	if be.Glyph != Placeholder {
		t.Errorf("'#' glyph = %q, want placeholder", be.Glyph)
	}
	if be.Input != '#' {
		t.Errorf("input = %q, want '#'", be.Input)
	}
}

func TestExplain_KeepsOriginalCase(t *testing.T) {
	bd := Explain("Ab")
	if bd[0].Input != 'A' {
		t.Errorf("Input = %q, want 'A'", bd[0].Input)
	}
	if bd[0].Entry.Char != 'a' {
		t.Errorf("Entry.Char = %q, want 'a'", bd[0].Entry.Char)
	}
}

func TestLookupEntry(t *testing.T) {
	tests := []struct {
		name    string
		char    rune
		wantOK  bool
		wantKey rune
	}{
		{"lowercase letter", 'q', true, 'q'},
		{"uppercase folds", 'Q', true, 'q'},
		{"digit", '7', true, '7'},
		{"comma", ',', true, ','},
		{"newline", '\n', true, '\n'},
		{"at sign", '@', false, 0},
		{"dotted capital I stays unmapped", 'İ', false, 0},
		{"greek", 'λ', false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := LookupEntry(tt.char)
			if ok != tt.wantOK {
				t.Fatalf("LookupEntry(%q) ok = %v, want %v", tt.char, ok, tt.wantOK)
			}
			if ok && e.Char != tt.wantKey {
				t.Errorf("LookupEntry(%q).Char = %q, want %q", tt.char, e.Char, tt.wantKey)
			}
		})
	}
}

func TestLookupEntry_Stable(t *testing.T) {
	for _, e := range Alphabet() {
		a, _ := LookupEntry(e.Char)
		b, _ := LookupEntry(e.Char)
		if a != b || a != e {
			t.Errorf("LookupEntry(%q) unstable: %+v, %+v, table %+v", e.Char, a, b, e)
		}
	}
}

func TestAlphabet(t *testing.T) {
	if got := len(Letters()); got != 26 {
		t.Errorf("Letters() = %d entries, want 26", got)
	}
	if got := len(Digits()); got != 10 {
		t.Errorf("Digits() = %d entries, want 10", got)
	}
	for _, e := range PunctuationMarks() {
		if e.Category != Punctuation && e.Category != Silent {
			t.Errorf("PunctuationMarks() contains %q of category %v", e.Char, e.Category)
		}
	}

	letters := Letters()
	for i, e := range letters {
		if want := rune('a' + i); e.Char != want {
			t.Errorf("Letters()[%d] = %q, want %q", i, e.Char, want)
		}
	}

	// Mutating the copy must not affect the table
	all := Alphabet()
	all[0].Glyph = "x"
	if e, _ := LookupEntry('a'); e.Glyph == "x" {
		t.Error("Alphabet() exposed the live table")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{"all supported", "Hello, World!", true, ""},
		{"empty", "", true, ""},
		{"one unsupported", "a@b", false, "@"},
		{"listed once", "@@#@", false, "@#"},
		{"first-seen order", "é#é", false, "é#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, got := Validate(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Validate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if string(got) != tt.want {
				t.Errorf("Validate(%q) unsupported = %q, want %q", tt.input, string(got), tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		char rune
		want string
	}{
		{'L', "Lion"},
		{'5', "Egyptian numeral"},
		{'?', "punctuation"},
		{' ', "word separator"},
		{'\'', "nothing"},
		{'%', "not supported"},
	}

	for _, tt := range tests {
		got := Info(tt.char)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Info(%q) = %q, want it to contain %q", tt.char, got, tt.want)
		}
	}
}

func TestConvertAll(t *testing.T) {
	in := []string{"nile", "", "RA"}
	got := ConvertAll(in)
	if len(got) != len(in) {
		t.Fatalf("ConvertAll returned %d results, want %d", len(got), len(in))
	}
	for i, s := range in {
		if got[i] != Convert(s) {
			t.Errorf("ConvertAll[%d] = %q, want %q", i, got[i], Convert(s))
		}
	}
}

func TestConvert_ConcurrentReaders(t *testing.T) {
	const input = "hieroglyphics rock 42"
	want := Convert(input)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Convert(input); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Convert = %q, want %q", got, want)
	}
}

func TestConvert_OtherWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantMatch bool
	}{
		{"carriage return", "\r", " ", true},
		{"vertical tab", "\v", " ", true},
		{"form feed", "\f", " ", true},
		{"no-break space", "\u00a0", " ", true},
		{"em space", "\u2003", Placeholder, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
			be := Explain(tt.input)[0]
			if be.Matched != tt.wantMatch {
				t.Errorf("Explain(%q) matched = %v, want %v", tt.input, be.Matched, tt.wantMatch)
			}
			if tt.wantMatch && be.Entry.Category != Whitespace {
				t.Errorf("Explain(%q) category = %v, want separator", tt.input, be.Entry.Category)
			}
		})
	}

	if got, want := Convert("ra\r\nra"), Convert("ra")+" \n"+Convert("ra"); got != want {
		t.Errorf("Convert(CRLF text) = %q, want %q", got, want)
	}
}

func TestLookupEntry_SharedGlyphMeanings(t *testing.T) {
	tests := []struct {
		char        rune
		wantGlyph   string
		wantMeaning string
	}{
		{'j', "\U000131B3", "Quail Chick"},
		{'o', "\U00013171", "Quail Chick"},
		{'e', "\U000131CB", "Reed"},
	}
	for _, tt := range tests {
		e, ok := LookupEntry(tt.char)
		if !ok || e.Glyph != tt.wantGlyph || e.Meaning != tt.wantMeaning {
			t.Errorf("LookupEntry(%q) = %+v, %v; want %q %q", tt.char, e, ok, tt.wantGlyph, tt.wantMeaning)
		}
	}
}
