package database

import (
	"fmt"

	"clinicship/model"

	"github.com/jmoiron/sqlx"
)

// InsertShipmentExportInTx は出荷CSVの出力履歴を登録します。CreatedAt が空なら現在時刻です。
func InsertShipmentExportInTx(tx *sqlx.Tx, e model.ShipmentExport) error {
	if e.CreatedAt == "" {
		e.CreatedAt = now()
	}
	q := tx.Rebind(`
		INSERT INTO shipment_exports (id, tenant_id, carrier, ship_date, order_count, file_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if _, err := tx.Exec(q, e.ID, e.TenantID, e.Carrier, e.ShipDate, e.OrderCount, e.FileName, e.CreatedAt); err != nil {
		return fmt.Errorf("InsertShipmentExportInTx (ID: %s) failed: %w", e.ID, err)
	}
	return nil
}

// ListShipmentExports はテナントの出力履歴を新しい順に返します。limit が0以下なら全件です。
func ListShipmentExports(db *sqlx.DB, tenantID string, limit int) ([]model.ShipmentExport, error) {
	q := `SELECT id, tenant_id, carrier, ship_date, order_count, file_name, created_at
		FROM shipment_exports WHERE tenant_id = ? ORDER BY created_at DESC`
	args := []interface{}{tenantID}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	var exports []model.ShipmentExport
	if err := db.Select(&exports, db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("failed to list shipment exports: %w", err)
	}
	return exports, nil
}
