package orders

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"clinicship/database"
	"clinicship/model"
	"clinicship/parsers"

	"github.com/jmoiron/sqlx"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// ImportOrdersHandler は注文CSVのインポートを処理します。
func ImportOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		tenantID := r.URL.Query().Get("tenant")
		if tenantID == "" {
			writeJSONError(w, "tenant は必須です。", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			writeJSONError(w, "CSVファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		records, err := parsers.ParseOrderCSV(file)
		if err != nil {
			writeJSONError(w, "CSVファイルの解析に失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(records) == 0 {
			writeJSONError(w, "CSVから読み込むデータがありません。", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			writeJSONError(w, "データベーストランザクションの開始に失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		if err := database.UpsertOrdersInTx(tx, tenantID, records); err != nil {
			log.Printf("ERROR: %v", err)
			writeJSONError(w, "注文の登録に失敗しました。", http.StatusInternalServerError)
			return
		}
		if err := tx.Commit(); err != nil {
			writeJSONError(w, "データベースのコミットに失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}

		log.Printf("Imported %d orders for tenant %s", len(records), tenantID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("インポート完了。\n注文: %d件", len(records)),
			"count":   len(records),
		})
	}
}

// ListOrdersHandler はテナントの注文一覧を返します。status で絞り込めます。
func ListOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant")
		if tenantID == "" {
			writeJSONError(w, "tenant は必須です。", http.StatusBadRequest)
			return
		}
		list, err := database.GetOrders(db, tenantID, r.URL.Query().Get("status"))
		if err != nil {
			log.Printf("ERROR: %v", err)
			writeJSONError(w, "注文の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []model.Order{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}
