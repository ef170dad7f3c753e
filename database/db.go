package database

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	tenant_id   TEXT NOT NULL,
	payment_id  TEXT NOT NULL,
	name        TEXT NOT NULL DEFAULT '',
	postal      TEXT NOT NULL DEFAULT '',
	address     TEXT NOT NULL DEFAULT '',
	email       TEXT NOT NULL DEFAULT '',
	phone       TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'paid',
	import_seq  INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (tenant_id, payment_id)
);
CREATE TABLE IF NOT EXISTS shipping_settings (
	tenant_id     TEXT PRIMARY KEY,
	settings_json TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS shipment_exports (
	id          TEXT PRIMARY KEY,
	tenant_id   TEXT NOT NULL,
	carrier     TEXT NOT NULL,
	ship_date   TEXT NOT NULL,
	order_count INTEGER NOT NULL,
	file_name   TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_shipment_exports_tenant ON shipment_exports (tenant_id, created_at);
`

// timestampLayout は文字列比較で時刻順になる固定長の形式です。
const timestampLayout = "2006-01-02 15:04:05.000000"

var now = func() string {
	return time.Now().Format(timestampLayout)
}

// Open はDBに接続します。driver は sqlite3 (単体運用) か postgres (Supabase 等) です。
func Open(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("db dsn is empty (driver: %s)", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == "sqlite3" {
		// :memory: も含め1接続で使う
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetMaxOpenConns(10)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// InitSchema はテーブルを作成します (存在する場合は何もしません)。
func InitSchema(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}
