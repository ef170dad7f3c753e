package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"clinicship/database"
	"clinicship/model"
	"clinicship/settings"
	"clinicship/shipment"

	"github.com/jmoiron/sqlx"
)

// ヘルパー関数: エラーをJSONで返す
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

const maxSettingsBody = 1 << 20

// GetShippingSettingsHandler は既定値とマージ済みのテナント出荷設定を返します
func GetShippingSettingsHandler(db *sqlx.DB, defaults model.ShippingSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant")
		if tenantID == "" {
			writeJSONError(w, "tenant は必須です。", http.StatusBadRequest)
			return
		}
		merged, err := shipment.LoadSettings(db, tenantID, defaults)
		if err != nil {
			log.Printf("Error loading shipping settings: %v", err)
			writeJSONError(w, "出荷設定の読み込みに失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(merged)
	}
}

// SaveShippingSettingsHandler はテナント出荷設定を保存します。
// 保存するのは送られたJSONそのもので、既定値とのマージは読み込み時に行います。
func SaveShippingSettingsHandler(db *sqlx.DB, defaults model.ShippingSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant")
		if tenantID == "" {
			writeJSONError(w, "tenant は必須です。", http.StatusBadRequest)
			return
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, maxSettingsBody))
		if err != nil {
			writeJSONError(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}

		merged, err := settings.Merge(defaults, raw)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := settings.Validate(merged); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := database.SaveShippingSettingsJSON(db, tenantID, raw); err != nil {
			log.Printf("Error saving shipping settings: %v", err)
			writeJSONError(w, "設定の保存に失敗しました。", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "設定を保存しました。"})
	}
}
