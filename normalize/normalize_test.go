package normalize

import "testing"

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9012345678", "09012345678"},
		{"8012345678", "08012345678"},
		{"7012345678", "07012345678"},
		{"312345678", "0312345678"},
		{"03-1234-5678", "03-1234-5678"},
		{"3-1234-5678", "03-1234-5678"},
		{"90-1234-5678", "090-1234-5678"},
		{"090-1234-5678", "090-1234-5678"},
		{"(090) 1234 5678", "09012345678"},
		{"６-1234-5678", "6-1234-5678"},
		{"０９０－１２３４－５６７８", "090-1234-5678"},
		{"０９０ー１２３４ー５６７８", "09012345678"},
		{"45-123-4567", "45-123-4567"},
		{"", ""},
		{"なし", ""},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestPostal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123", "0000123"},
		{"〒123-4567", "1234567"},
		{"1234567890", "4567890"},
		{"１２３－４５６７", "1234567"},
		{"", ""},
		{"〒", ""},
	}
	for _, c := range cases {
		if got := Postal(c.in); got != c.want {
			t.Errorf("Postal(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestPostalIdempotentAndFixedWidth(t *testing.T) {
	inputs := []string{"", "1", "123-4567", "〒100-0001", "98765432101", "abc", "0"}
	for _, in := range inputs {
		once := Postal(in)
		if twice := Postal(once); twice != once {
			t.Errorf("Postal not idempotent for %q: %q then %q", in, once, twice)
		}
		if len(once) != 0 && len(once) != PostalLength {
			t.Errorf("Postal(%q) length: expected 0 or %d, got %d", in, PostalLength, len(once))
		}
	}
}

func TestHyphens(t *testing.T) {
	in := "1−2‐3－4"
	if got := Hyphens(in); got != "1-2-3-4" {
		t.Errorf("expected %q, got %q", "1-2-3-4", got)
	}
	if got := Hyphens("タワー"); got != "タワー" {
		t.Errorf("long vowel mark must be kept, got %q", got)
	}
}
