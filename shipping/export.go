package shipping

import (
	"errors"
	"fmt"
	"strings"

	"clinicship/model"
	"clinicship/normalize"
)

// ErrUnknownCarrier は対応していない配送業者が指定された場合のエラーです。
var ErrUnknownCarrier = errors.New("未対応の配送業者です")

// Export は1回分の出荷CSVです。Rows は入力の注文順を保ちます。
type Export struct {
	Carrier  model.Carrier `json:"carrier"`
	ShipDate string        `json:"shipDate"`
	FileName string        `json:"fileName"`
	Header   []string      `json:"header"`
	Rows     [][]string    `json:"rows"`
	CSV      string        `json:"-"`
}

// ResolveCarrier は空なら設定の既定配送業者を使い、未対応なら ErrUnknownCarrier を返します。
func ResolveCarrier(c model.Carrier, s model.ShippingSettings) (model.Carrier, error) {
	if c == "" {
		c = s.DefaultCarrier
	}
	switch model.Carrier(strings.ToLower(string(c))) {
	case model.CarrierYamato:
		return model.CarrierYamato, nil
	case model.CarrierJapanPost:
		return model.CarrierJapanPost, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCarrier, c)
}

// BuildExport は注文一覧から配送業者のCSVを作成します。
func (f *Formatter) BuildExport(orders []model.OrderData, carrier model.Carrier, shipDate string, s model.ShippingSettings) (*Export, error) {
	c, err := ResolveCarrier(carrier, s)
	if err != nil {
		return nil, err
	}

	exp := &Export{
		Carrier:  c,
		ShipDate: shipDate,
		Rows:     make([][]string, 0, len(orders)),
	}

	switch c {
	case model.CarrierYamato:
		exp.Header = YamatoHeader[:]
		for _, o := range orders {
			exp.Rows = append(exp.Rows, f.YamatoRow(o, shipDate, s.Yamato))
		}
	case model.CarrierJapanPost:
		exp.Header = JapanPostHeader[:]
		for _, o := range orders {
			exp.Rows = append(exp.Rows, f.JapanPostRow(o, shipDate, s.JapanPost))
		}
	}

	exp.FileName = exportFileName(c, shipDate)
	exp.CSV = AssembleCSV(exp.Header, exp.Rows)
	return exp, nil
}

func exportFileName(c model.Carrier, shipDate string) string {
	date := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, shipDate)

	prefix := "yamato_b2"
	if c == model.CarrierJapanPost {
		prefix = "japanpost"
	}
	if date == "" {
		return prefix + ".csv"
	}
	return fmt.Sprintf("%s_%s.csv", prefix, date)
}

// MissingField は必須項目が空の注文です。
type MissingField struct {
	PaymentID string   `json:"paymentId"`
	Fields    []string `json:"fields"`
}

// ValidateOrders は郵便番号・住所・電話番号が空の注文を返します。
// 空欄のままCSVにすると配送業者の取込でエラーになるため、出力前に呼び出します。
func ValidateOrders(orders []model.OrderData) []MissingField {
	var missing []MissingField
	for _, o := range orders {
		var fields []string
		if normalize.Postal(o.Postal) == "" {
			fields = append(fields, "postal")
		}
		if strings.TrimSpace(o.Address) == "" {
			fields = append(fields, "address")
		}
		if normalize.Phone(o.Phone) == "" {
			fields = append(fields, "phone")
		}
		if len(fields) > 0 {
			missing = append(missing, MissingField{PaymentID: o.PaymentID, Fields: fields})
		}
	}
	return missing
}
