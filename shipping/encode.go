package shipping

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	EncodingSJIS = "sjis"
	EncodingUTF8 = "utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// convertToSJIS は文字列をShift_JISバイト列に変換します。
// Shift_JISにない文字 (一部の異体字・絵文字など) は置換文字にして続行します。
func convertToSJIS(s string) ([]byte, error) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
	if err == nil {
		return encoded, nil
	}
	log.Printf("WARN: Shift_JISに変換できない文字を置換します: %v", err)

	encoded, _, err = transform.Bytes(encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("Shift_JIS変換に失敗: %w", err)
	}
	return encoded, nil
}

// Encode はCSV文字列を出力用のバイト列にします。
// sjis (既定) は B2クラウド・ゆうプリR がそのまま読める形式、utf8 はBOM付きです。
func Encode(csv, enc string) ([]byte, error) {
	switch strings.ToLower(enc) {
	case "", EncodingSJIS, "shift_jis":
		return convertToSJIS(csv)
	case EncodingUTF8, "utf-8":
		return append(append([]byte{}, utf8BOM...), csv...), nil
	}
	return nil, fmt.Errorf("未対応の文字コードです: %q", enc)
}

// ContentType は Encode の出力に対応する Content-Type を返します。
func ContentType(enc string) string {
	switch strings.ToLower(enc) {
	case EncodingUTF8, "utf-8":
		return "text/csv; charset=utf-8"
	}
	return "text/csv; charset=Shift_JIS"
}
