package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"clinicship/model"
)

var orderRequiredHeaders = []string{"payment_id", "name", "postal", "address"}

// ParseOrderCSV は注文CSV (UTF-8 または Shift_JIS) を解析します。
// 必須ヘッダーは payment_id, name, postal, address、任意で email, phone です。
func ParseOrderCSV(r io.Reader) ([]model.OrderData, error) {
	decoded, err := decodeInput(r)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSVファイルが空です")
	}
	if err != nil {
		return nil, fmt.Errorf("CSVヘッダーの読み取りに失敗: %w", err)
	}

	colIndex, err := getColIndex(header, orderRequiredHeaders)
	if err != nil {
		return nil, err
	}

	var orders []model.OrderData
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: 注文CSV %d行目の読み取りエラー (スキップ): %v", line, err)
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		paymentID := get("payment_id")
		if paymentID == "" {
			log.Printf("WARN: 注文CSV %d行目 (payment_id が空) (スキップ)", line)
			continue
		}

		orders = append(orders, model.OrderData{
			PaymentID: paymentID,
			Name:      get("name"),
			Postal:    get("postal"),
			Address:   get("address"),
			Email:     get("email"),
			Phone:     get("phone"),
		})
	}

	return orders, nil
}
