package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, order_number, user_id, address_id, status, payment_status,
        subtotal, shipping_cost, discount, tax, total,
        payment_session_token, COALESCE(estimated_delivery::text,''),
        created_at::text, updated_at::text`

	insertAddressSnapshotQuery = `
        INSERT INTO order_addresses (user_id, recipient, phone, street, province_code, province_name,
            regency_code, regency_name, district_code, district_name, postal_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id
    `
	insertOrderQuery = `
        INSERT INTO orders (order_number, user_id, address_id, status, payment_status,
            subtotal, shipping_cost, discount, tax, total, estimated_delivery)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NULLIF($11,'')::date)
        RETURNING ` + orderColumns

	insertOrderItemQuery = `
        INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id
    `
	insertShippingRecordQuery = `
        INSERT INTO shipping_records (order_id, courier_code, service, cost, etd, raw_quote)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id
    `
	listItemsQuery = `
        SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal
        FROM order_items
        WHERE order_id = ANY($1::int[])
        ORDER BY id
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order, addr Address, items []Item, ship ShippingRecord) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var addressID int
	if err := tx.QueryRow(insertAddressSnapshotQuery,
		addr.UserID, addr.Recipient, addr.Phone, addr.Street,
		addr.ProvinceCode, addr.ProvinceName, addr.RegencyCode, addr.RegencyName,
		addr.DistrictCode, addr.DistrictName, addr.PostalCode).Scan(&addressID); err != nil {
		return Order{}, err
	}

	created, err := scanOrder(tx.QueryRow(insertOrderQuery,
		ord.OrderNumber, ord.UserID, addressID, ord.Status, ord.PaymentStatus,
		ord.Subtotal, ord.ShippingCost, ord.Discount, ord.Tax, ord.Total,
		ord.EstimatedDelivery))
	if err != nil {
		return Order{}, err
	}

	created.Items = make([]Item, 0, len(items))
	for _, it := range items {
		it.OrderID = created.ID
		if err := tx.QueryRow(insertOrderItemQuery,
			it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal).Scan(&it.ID); err != nil {
			return Order{}, err
		}
		created.Items = append(created.Items, it)
	}

	var raw any
	if len(ship.RawQuote) > 0 {
		raw = []byte(ship.RawQuote)
	}
	if err := tx.QueryRow(insertShippingRecordQuery,
		created.ID, ship.CourierCode, ship.Service, ship.Cost, ship.ETD, raw).Scan(&ship.ID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return created, nil
}

func (r *PostgresRepository) GetByOrderNumber(orderNumber string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	items, err := r.listItems([]int{ord.ID})
	if err != nil {
		return Order{}, err
	}
	ord.Items = items[ord.ID]
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(orderNumber string, status Status, paymentStatus PaymentStatus) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $2, payment_status = $3, updated_at = now() WHERE order_number = $1`,
		orderNumber, status, paymentStatus)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetPaymentSession(orderID int, token string) error {
	res, err := r.db.Exec(`UPDATE orders SET payment_session_token = $2, updated_at = now() WHERE id = $1`, orderID, token)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		ord, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.listItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

func (r *PostgresRepository) listItems(orderIDs []int) (map[int][]Item, error) {
	rows, err := r.db.Query(listItemsQuery, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]Item)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func scanOrder(row *sql.Row) (Order, error) {
	var ord Order
	err := row.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &ord.AddressID, &ord.Status, &ord.PaymentStatus,
		&ord.Subtotal, &ord.ShippingCost, &ord.Discount, &ord.Tax, &ord.Total,
		&ord.PaymentSessionToken, &ord.EstimatedDelivery, &ord.CreatedAt, &ord.UpdatedAt)
	return ord, err
}

func scanOrderRow(rows *sql.Rows) (Order, error) {
	var ord Order
	err := rows.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &ord.AddressID, &ord.Status, &ord.PaymentStatus,
		&ord.Subtotal, &ord.ShippingCost, &ord.Discount, &ord.Tax, &ord.Total,
		&ord.PaymentSessionToken, &ord.EstimatedDelivery, &ord.CreatedAt, &ord.UpdatedAt)
	return ord, err
}
