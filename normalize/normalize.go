// Package normalize は電話番号・郵便番号・ハイフン類を出荷CSV向けに正規化します。
package normalize

import (
	"strings"

	"golang.org/x/text/width"
)

// dashReplacer はハイフンに見える各種ダッシュ記号を ASCII の '-' に揃えます。
// 長音記号 (ー) は建物名 (タワー, コーポ 等) に含まれるため対象外です。
var dashReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u2015", "-", // horizontal bar
	"\u2212", "-", // minus sign
	"\uFE58", "-",
	"\uFE63", "-",
	"\uFF0D", "-", // fullwidth hyphen-minus
)

// Hyphens はダッシュ類を '-' に置換します。
func Hyphens(s string) string {
	return dashReplacer.Replace(s)
}

var phoneRepairPrefixes = []string{"80", "90", "70", "3"}

// Phone は電話番号から数字とハイフン以外を取り除き、
// 表計算ソフト経由で落ちた先頭の 0 を補います。
// 補完するのは 070/080/090 の携帯番号と 03 (東京) のみです。
// それ以外の市外局番は補完しません。
func Phone(raw string) string {
	s := width.Narrow.String(raw)
	s = Hyphens(s)

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)

	if strings.Contains(cleaned, "-") {
		for _, p := range phoneRepairPrefixes {
			if strings.HasPrefix(cleaned, p+"-") {
				return "0" + cleaned
			}
		}
		return cleaned
	}

	for _, p := range phoneRepairPrefixes {
		if strings.HasPrefix(cleaned, p) {
			return "0" + cleaned
		}
	}
	return cleaned
}

// PostalLength は配送業者CSVの郵便番号桁数です。
const PostalLength = 7

// Postal は郵便番号を数字のみ7桁に揃えます。
// 7桁を超える場合は末尾7桁、足りない場合は先頭を 0 で埋めます。
// 数字が1つもなければ空文字を返します。
func Postal(raw string) string {
	s := width.Narrow.String(raw)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	if digits == "" {
		return ""
	}
	if len(digits) > PostalLength {
		return digits[len(digits)-PostalLength:]
	}
	if len(digits) < PostalLength {
		return strings.Repeat("0", PostalLength-len(digits)) + digits
	}
	return digits
}
