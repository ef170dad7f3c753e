package shipment

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"clinicship/address"
	"clinicship/database"
	"clinicship/model"
	"clinicship/settings"
	"clinicship/shipping"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// ExportRequest は出荷CSV作成のリクエストです。
// PaymentIDs が空の場合は未出荷 (paid) の注文をすべて対象にします。
type ExportRequest struct {
	TenantID    string        `json:"tenantId"`
	Carrier     model.Carrier `json:"carrier"`
	ShipDate    string        `json:"shipDate"`
	PaymentIDs  []string      `json:"paymentIds"`
	Encoding    string        `json:"encoding"`
	MarkShipped bool          `json:"markShipped"`
}

// Deps は出荷CSVハンドラの依存です。Defaults はテナント設定がない項目に使います。
type Deps struct {
	DB        *sqlx.DB
	Formatter *shipping.Formatter
	Defaults  model.ShippingSettings
	Encoding  string
	Now       func() time.Time
}

// LoadSettings はテナントの出荷設定を既定値とマージして返します。
func LoadSettings(db *sqlx.DB, tenantID string, defaults model.ShippingSettings) (model.ShippingSettings, error) {
	raw, err := database.GetShippingSettingsJSON(db, tenantID)
	if err != nil {
		return defaults, err
	}
	return settings.Merge(defaults, raw)
}

// ExportHandler は注文から配送業者の取込CSVを作成してダウンロードさせます。
func ExportHandler(d Deps) http.HandlerFunc {
	if d.Formatter == nil {
		d.Formatter = shipping.NewFormatter(nil)
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if req.TenantID == "" {
			writeJSONError(w, "tenantId は必須です。", http.StatusBadRequest)
			return
		}

		shipDate := shipping.FormatShipDate(d.Now())
		if req.ShipDate != "" {
			parsed, err := shipping.ParseShipDate(req.ShipDate)
			if err != nil {
				writeJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			shipDate = parsed
		}

		enc := req.Encoding
		if enc == "" {
			enc = d.Encoding
		}

		cfg, err := LoadSettings(d.DB, req.TenantID, d.Defaults)
		if err != nil {
			log.Printf("ERROR: Failed to load shipping settings (tenant %s): %v", req.TenantID, err)
			writeJSONError(w, "出荷設定の読み込みに失敗しました。", http.StatusInternalServerError)
			return
		}

		var stored []model.Order
		if len(req.PaymentIDs) > 0 {
			var notFound []string
			stored, notFound, err = database.GetOrdersByPaymentIDs(d.DB, req.TenantID, req.PaymentIDs)
			if err == nil && len(notFound) > 0 {
				writeJSON(w, http.StatusNotFound, map[string]interface{}{
					"message":  "注文が見つかりません。",
					"notFound": notFound,
				})
				return
			}
		} else {
			stored, err = database.GetOrders(d.DB, req.TenantID, model.OrderStatusPaid)
		}
		if err != nil {
			log.Printf("ERROR: Failed to get orders (tenant %s): %v", req.TenantID, err)
			writeJSONError(w, "注文の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		if len(stored) == 0 {
			writeJSONError(w, "出荷対象の注文がありません。", http.StatusNotFound)
			return
		}

		orders := make([]model.OrderData, len(stored))
		paymentIDs := make([]string, len(stored))
		for i, o := range stored {
			orders[i] = o.OrderData
			paymentIDs[i] = o.PaymentID
		}

		if missing := shipping.ValidateOrders(orders); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message": fmt.Sprintf("必須項目が空の注文が%d件あります。", len(missing)),
				"missing": missing,
			})
			return
		}

		exp, err := d.Formatter.BuildExport(orders, req.Carrier, shipDate, cfg)
		if err != nil {
			if errors.Is(err, shipping.ErrUnknownCarrier) {
				writeJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeJSONError(w, "CSVの作成に失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		body, err := shipping.Encode(exp.CSV, enc)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		record := model.ShipmentExport{
			ID:         uuid.NewString(),
			TenantID:   req.TenantID,
			Carrier:    string(exp.Carrier),
			ShipDate:   exp.ShipDate,
			OrderCount: len(exp.Rows),
			FileName:   exp.FileName,
		}
		if err := saveExport(d.DB, record, req.MarkShipped, paymentIDs); err != nil {
			log.Printf("ERROR: Failed to record shipment export (tenant %s): %v", req.TenantID, err)
			writeJSONError(w, "出力履歴の保存に失敗しました。", http.StatusInternalServerError)
			return
		}
		log.Printf("Shipment export %s: tenant=%s carrier=%s orders=%d", record.ID, record.TenantID, record.Carrier, record.OrderCount)

		w.Header().Set("Content-Type", shipping.ContentType(enc))
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(exp.FileName))
		w.Header().Set("X-Export-ID", record.ID)
		w.Write(body)
	}
}

func saveExport(db *sqlx.DB, record model.ShipmentExport, markShipped bool, paymentIDs []string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := database.InsertShipmentExportInTx(tx, record); err != nil {
		return err
	}
	if markShipped {
		if err := database.MarkOrdersShippedInTx(tx, record.TenantID, paymentIDs); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListExportsHandler はテナントの出力履歴を返します。
func ListExportsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant")
		if tenantID == "" {
			writeJSONError(w, "tenant は必須です。", http.StatusBadRequest)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		exports, err := database.ListShipmentExports(db, tenantID, limit)
		if err != nil {
			log.Printf("ERROR: %v", err)
			writeJSONError(w, "出力履歴の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		if exports == nil {
			exports = []model.ShipmentExport{}
		}
		writeJSON(w, http.StatusOK, exports)
	}
}

// SplitAddressHandler は住所分割の結果を確認するためのAPIです。
func SplitAddressHandler(s address.Splitter) http.HandlerFunc {
	if s == nil {
		s = address.NewHeuristic()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		writeJSON(w, http.StatusOK, s.Split(q))
	}
}
