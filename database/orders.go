package database

import (
	"fmt"

	"clinicship/model"

	"github.com/jmoiron/sqlx"
)

const orderColumns = `tenant_id, payment_id, name, postal, address, email, phone, status, created_at`

// UpsertOrdersInTx は注文を登録します。payment_id が既にある場合は宛先情報のみ更新し、status は変更しません。
// import_seq には引数の並び順を保存し、一覧はこの順で返します。
func UpsertOrdersInTx(tx *sqlx.Tx, tenantID string, orders []model.OrderData) error {
	q := tx.Rebind(`
		INSERT INTO orders (tenant_id, payment_id, name, postal, address, email, phone, status, import_seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tenant_id, payment_id) DO UPDATE SET
			name = excluded.name,
			postal = excluded.postal,
			address = excluded.address,
			email = excluded.email,
			phone = excluded.phone
	`)
	stmt, err := tx.Prepare(q)
	if err != nil {
		return fmt.Errorf("failed to prepare order upsert statement: %w", err)
	}
	defer stmt.Close()

	createdAt := now()
	for i, o := range orders {
		if _, err := stmt.Exec(
			tenantID, o.PaymentID, o.Name, o.Postal, o.Address, o.Email, o.Phone,
			model.OrderStatusPaid, i, createdAt,
		); err != nil {
			return fmt.Errorf("UpsertOrdersInTx (Tenant: %s, PaymentID: %s) failed: %w", tenantID, o.PaymentID, err)
		}
	}
	return nil
}

// GetOrders はテナントの注文を登録順に返します。status が空なら全件です。
func GetOrders(db *sqlx.DB, tenantID, status string) ([]model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = ?`
	args := []interface{}{tenantID}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at, import_seq`

	var orders []model.Order
	if err := db.Select(&orders, db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("failed to get orders for tenant %s: %w", tenantID, err)
	}
	return orders, nil
}

// GetOrdersByPaymentIDs は指定された payment_id の注文を、引数の順で返します。
// 重複した payment_id は最初の1件だけを使います。見つからなかった payment_id は notFound に入ります。
func GetOrdersByPaymentIDs(db *sqlx.DB, tenantID string, paymentIDs []string) (orders []model.Order, notFound []string, err error) {
	if len(paymentIDs) == 0 {
		return nil, nil, nil
	}

	q, args, err := sqlx.In(`SELECT `+orderColumns+` FROM orders WHERE tenant_id = ? AND payment_id IN (?)`, tenantID, paymentIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build order query: %w", err)
	}

	var found []model.Order
	if err := db.Select(&found, db.Rebind(q), args...); err != nil {
		return nil, nil, fmt.Errorf("failed to get orders by payment id: %w", err)
	}

	byID := make(map[string]model.Order, len(found))
	for _, o := range found {
		byID[o.PaymentID] = o
	}
	seen := make(map[string]bool, len(paymentIDs))
	for _, id := range paymentIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		o, ok := byID[id]
		if !ok {
			notFound = append(notFound, id)
			continue
		}
		orders = append(orders, o)
	}
	return orders, notFound, nil
}

// MarkOrdersShippedInTx は注文を出荷済みにします。
func MarkOrdersShippedInTx(tx *sqlx.Tx, tenantID string, paymentIDs []string) error {
	if len(paymentIDs) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`UPDATE orders SET status = ? WHERE tenant_id = ? AND payment_id IN (?)`,
		model.OrderStatusShipped, tenantID, paymentIDs)
	if err != nil {
		return fmt.Errorf("failed to build shipped update: %w", err)
	}
	if _, err := tx.Exec(tx.Rebind(q), args...); err != nil {
		return fmt.Errorf("MarkOrdersShippedInTx (Tenant: %s) failed: %w", tenantID, err)
	}
	return nil
}
