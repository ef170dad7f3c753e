// Package address は自由記述の住所を配送業者CSVの「住所」と「建物名」欄に分割します。
//
// 日本の住所に形式文法はないため、ここでの分割は近似です。
// 誤って分割する場合でも情報は Addr1/Addr2 のどちらかに残ります。
package address

import (
	"regexp"
	"strings"

	"clinicship/normalize"
)

// Parts は分割結果です。Addr1 は都道府県〜番地、Addr2 は建物名・部屋番号です。
type Parts struct {
	Addr1 string `json:"addr1"`
	Addr2 string `json:"addr2"`
}

// Splitter は住所分割の戦略です。
type Splitter interface {
	Split(raw string) Parts
}

// DefaultMarkers は建物・部屋を示す語です。最初に現れた位置で分割します。
var DefaultMarkers = []string{
	"号室",
	"階",
	"棟",
	"ビル",
	"マンション",
	"タワー",
	"ハイツ",
	"コーポ",
	"アパート",
	"レジデンス",
	"メゾン",
	"パレス",
	"ハウス",
	"ヒルズ",
	"プラザ",
	"コート",
}

var (
	spaceRe = regexp.MustCompile(`[\s\p{Zs}]+`)
	// 番地部分: 数字, 丁目, 数字, 番地, 数字, 号, (-数字)*
	blockRe = regexp.MustCompile(`^[0-9]*(?:丁目)?[0-9]*(?:番地)?[0-9]*(?:号)?(?:-[0-9]+)*`)
)

// Heuristic は建物語のスキャンと番地パターンの2段階で分割します。
type Heuristic struct {
	Markers []string
}

// NewHeuristic は DefaultMarkers を使う Heuristic を返します。
func NewHeuristic() *Heuristic {
	return &Heuristic{Markers: DefaultMarkers}
}

var defaultSplitter = NewHeuristic()

// Split は既定の Heuristic で住所を分割します。
func Split(raw string) Parts {
	return defaultSplitter.Split(raw)
}

// Clean は空白 (全角スペース含む) を半角スペース1つにまとめ、ダッシュ類を '-' に揃えます。
func Clean(raw string) string {
	s := spaceRe.ReplaceAllString(raw, " ")
	s = normalize.Hyphens(s)
	return strings.TrimSpace(s)
}

func (h *Heuristic) Split(raw string) Parts {
	s := Clean(raw)
	if s == "" {
		return Parts{}
	}

	if idx := h.markerIndex(s); idx >= 0 {
		addr1 := strings.TrimSpace(s[:idx])
		if addr1 == "" {
			return Parts{Addr1: s}
		}
		return Parts{Addr1: addr1, Addr2: strings.TrimSpace(s[idx:])}
	}

	digit := strings.IndexAny(s, "0123456789")
	if digit < 0 {
		return Parts{Addr1: s}
	}

	end := digit + len(blockRe.FindString(s[digit:]))
	addr1 := strings.TrimSpace(s[:end])
	tail := strings.TrimSpace(s[end:])

	switch {
	case tail == "":
		return Parts{Addr1: addr1}
	case isDigit(tail[0]):
		// 番地の取りこぼしの可能性があるため分割しない
		return Parts{Addr1: addr1 + tail}
	default:
		return Parts{Addr1: addr1, Addr2: tail}
	}
}

func (h *Heuristic) markerIndex(s string) int {
	first := -1
	for _, m := range h.Markers {
		if m == "" {
			continue
		}
		if i := strings.Index(s, m); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
