package shipping

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"clinicship/model"
)

func TestBuildExportKeepsOrder(t *testing.T) {
	orders := []model.OrderData{testOrder(), testOrder(), testOrder()}
	orders[0].PaymentID = "c"
	orders[1].PaymentID = "a"
	orders[2].PaymentID = "b"

	exp, err := NewFormatter(nil).BuildExport(orders, "", "2026/10/15", testSettings())
	if err != nil {
		t.Fatalf("BuildExport failed: %v", err)
	}
	if exp.Carrier != model.CarrierYamato {
		t.Errorf("expected default carrier yamato, got %q", exp.Carrier)
	}
	if exp.FileName != "yamato_b2_20261015.csv" {
		t.Errorf("unexpected file name %q", exp.FileName)
	}
	for i, want := range []string{"c", "a", "b"} {
		if exp.Rows[i][0] != want {
			t.Errorf("row %d: expected %q, got %q", i, want, exp.Rows[i][0])
		}
	}
	if lines := strings.Split(exp.CSV, "\r\n"); len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestBuildExportJapanPost(t *testing.T) {
	exp, err := NewFormatter(nil).BuildExport([]model.OrderData{testOrder()}, "JapanPost", "2026/10/15", testSettings())
	if err != nil {
		t.Fatalf("BuildExport failed: %v", err)
	}
	if exp.Carrier != model.CarrierJapanPost {
		t.Errorf("expected japanpost, got %q", exp.Carrier)
	}
	if len(exp.Header) != JapanPostColumns || len(exp.Rows[0]) != JapanPostColumns {
		t.Errorf("unexpected column counts %d/%d", len(exp.Header), len(exp.Rows[0]))
	}
	if exp.FileName != "japanpost_20261015.csv" {
		t.Errorf("unexpected file name %q", exp.FileName)
	}
}

func TestBuildExportUnknownCarrier(t *testing.T) {
	s := testSettings()
	s.DefaultCarrier = ""
	_, err := NewFormatter(nil).BuildExport(nil, "", "2026/10/15", s)
	if !errors.Is(err, ErrUnknownCarrier) {
		t.Errorf("expected ErrUnknownCarrier, got %v", err)
	}
	_, err = NewFormatter(nil).BuildExport(nil, "sagawa", "2026/10/15", s)
	if !errors.Is(err, ErrUnknownCarrier) {
		t.Errorf("expected ErrUnknownCarrier, got %v", err)
	}
}

func TestValidateOrders(t *testing.T) {
	ok := testOrder()
	bad := model.OrderData{PaymentID: "pay_bad", Postal: "〒", Address: " ", Phone: "なし"}
	missing := ValidateOrders([]model.OrderData{ok, bad})
	if len(missing) != 1 {
		t.Fatalf("expected 1 invalid order, got %d", len(missing))
	}
	if missing[0].PaymentID != "pay_bad" {
		t.Errorf("unexpected payment id %q", missing[0].PaymentID)
	}
	if got := strings.Join(missing[0].Fields, ","); got != "postal,address,phone" {
		t.Errorf("unexpected fields %q", got)
	}
}

func TestEncodeShiftJIS(t *testing.T) {
	src := AssembleCSV(YamatoHeader[:], nil)
	b, err := Encode(src, EncodingSJIS)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), b)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(decoded) != src {
		t.Errorf("round trip mismatch:\n%s\n%s", decoded, src)
	}
}

func TestEncodeShiftJISReplacesUnsupported(t *testing.T) {
	b, err := Encode("山田😀", "")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(b) == 0 {
		t.Error("expected output")
	}
}

func TestEncodeUTF8WithBOM(t *testing.T) {
	b, err := Encode("a", EncodingUTF8)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF, 'a'}) {
		t.Errorf("unexpected bytes %v", b)
	}
	if _, err := Encode("a", "euc-jp"); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}
