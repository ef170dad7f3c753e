package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// GetShippingSettingsJSON はテナントの出荷設定JSONを返します。未登録なら nil です。
func GetShippingSettingsJSON(db *sqlx.DB, tenantID string) ([]byte, error) {
	var raw string
	err := db.Get(&raw, db.Rebind(`SELECT settings_json FROM shipping_settings WHERE tenant_id = ?`), tenantID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shipping settings for tenant %s: %w", tenantID, err)
	}
	return []byte(raw), nil
}

// SaveShippingSettingsJSON はテナントの出荷設定JSONを保存します。
func SaveShippingSettingsJSON(db *sqlx.DB, tenantID string, raw []byte) error {
	q := db.Rebind(`
		INSERT INTO shipping_settings (tenant_id, settings_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(tenant_id) DO UPDATE SET
			settings_json = excluded.settings_json,
			updated_at = excluded.updated_at
	`)
	if _, err := db.Exec(q, tenantID, string(raw), now()); err != nil {
		return fmt.Errorf("SaveShippingSettingsJSON (Tenant: %s) failed: %w", tenantID, err)
	}
	return nil
}
