package shipping

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestToCSVRow(t *testing.T) {
	got := ToCSVRow([]string{`He said "hi"`, "", "a,b"})
	want := `"He said ""hi""","","a,b"`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAssembleCSVUsesCRLF(t *testing.T) {
	got := AssembleCSV([]string{"h1", "h2"}, [][]string{{"a", "b"}, {"c", "d"}})
	want := "\"h1\",\"h2\"\r\n\"a\",\"b\"\r\n\"c\",\"d\""
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAssembleCSVHeaderOnly(t *testing.T) {
	if got := AssembleCSV([]string{"x"}, nil); got != `"x"` {
		t.Errorf("expected %q, got %q", `"x"`, got)
	}
}

// カンマや引用符を含む項目は単純な split では壊れるが、CSVパーサでは元に戻る
func TestAssembleCSVRoundTrip(t *testing.T) {
	fields := []string{`He said "hi"`, "東京都港区1-1, 2F", "line\r\nbreak"}
	out := AssembleCSV([]string{"a", "b", "c"}, [][]string{fields})

	naive := strings.Split(strings.Split(out, "\r\n")[1], ",")
	if len(naive) == len(fields) {
		t.Fatalf("naive split unexpectedly produced %d fields", len(naive))
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i, f := range fields {
		want := f
		// encoding/csv は引用符内の \r\n を \n として返す
		want = strings.ReplaceAll(want, "\r\n", "\n")
		if records[1][i] != want {
			t.Errorf("field %d: expected %q, got %q", i, want, records[1][i])
		}
	}
}
