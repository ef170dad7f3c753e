package model

// OrderData は出荷CSV作成時点の注文スナップショットです。
// フォーマッタは読み取るだけで変更しません。
type OrderData struct {
	PaymentID string `db:"payment_id" json:"payment_id"`
	Name      string `db:"name" json:"name"`
	Postal    string `db:"postal" json:"postal"`
	Address   string `db:"address" json:"address"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
}

// Order は orders テーブルのレコードを表します。
type Order struct {
	TenantID string `db:"tenant_id" json:"tenantId"`
	OrderData
	Status    string `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

const (
	OrderStatusPaid    = "paid"
	OrderStatusShipped = "shipped"
)

// ShipmentExport は shipment_exports テーブル (出荷CSVの出力履歴) のレコードです。
type ShipmentExport struct {
	ID         string `db:"id" json:"id"`
	TenantID   string `db:"tenant_id" json:"tenantId"`
	Carrier    string `db:"carrier" json:"carrier"`
	ShipDate   string `db:"ship_date" json:"shipDate"`
	OrderCount int    `db:"order_count" json:"orderCount"`
	FileName   string `db:"file_name" json:"fileName"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}
