// Package shipping は注文データを配送業者 (ヤマト B2クラウド / 日本郵便 ゆうプリR) の
// 一括取込CSVに変換します。
package shipping

import (
	"fmt"
	"strings"
	"time"

	"clinicship/address"
	"clinicship/model"
	"clinicship/normalize"
)

// Formatter は1注文を1行に変換します。設定は読み取るだけなので複数の呼び出しで共有できます。
type Formatter struct {
	splitter address.Splitter
}

// NewFormatter は住所分割の戦略を指定して Formatter を作成します。nil なら既定の Heuristic を使います。
func NewFormatter(s address.Splitter) *Formatter {
	if s == nil {
		s = address.NewHeuristic()
	}
	return &Formatter{splitter: s}
}

// normalizedOrder は正規化済みのお届け先情報です。
type normalizedOrder struct {
	postal string
	phone  string
	parts  address.Parts
}

func (f *Formatter) normalize(o model.OrderData) normalizedOrder {
	return normalizedOrder{
		postal: normalize.Postal(o.Postal),
		phone:  normalize.Phone(o.Phone),
		parts:  f.splitter.Split(o.Address),
	}
}

// renderMessage はeメール本文の {name} と {payment_id} を置換します。
func renderMessage(tmpl string, o model.OrderData) string {
	if tmpl == "" {
		return ""
	}
	return strings.NewReplacer("{name}", o.Name, "{payment_id}", o.PaymentID).Replace(tmpl)
}

const shipDateLayout = "2006/01/02"

// FormatShipDate は出荷予定日を YYYY/MM/DD にします。
func FormatShipDate(t time.Time) string {
	return t.Format(shipDateLayout)
}

// ParseShipDate は YYYY/MM/DD, YYYY-MM-DD, YYYYMMDD を受け付け、YYYY/MM/DD に揃えます。
func ParseShipDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{shipDateLayout, "2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatShipDate(t), nil
		}
	}
	return "", fmt.Errorf("出荷予定日の形式が不正です: %q", s)
}
