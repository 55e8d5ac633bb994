package payment

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	// ON CONFLICT DO NOTHING keeps concurrent webhook retries from racing
	// past the lookup-then-insert in the service.
	insertPaymentQuery = `
        INSERT INTO payments (order_id, transaction_id, amount, method, status)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (transaction_id) DO NOTHING
        RETURNING id, order_id, transaction_id, amount, method, status, created_at::text
    `
	getPaymentQuery = `
        SELECT id, order_id, transaction_id, amount, COALESCE(method,''), status, created_at::text
        FROM payments
        WHERE transaction_id = $1
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByTransactionID(transactionID string) (Payment, error) {
	var p Payment
	err := r.db.QueryRow(getPaymentQuery, transactionID).
		Scan(&p.ID, &p.OrderID, &p.TransactionID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Payment{}, ErrNotFound
	}
	if err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Payment) (Payment, error) {
	var created Payment
	var method sql.NullString
	err := r.db.QueryRow(insertPaymentQuery, p.OrderID, p.TransactionID, p.Amount, p.Method, p.Status).
		Scan(&created.ID, &created.OrderID, &created.TransactionID, &created.Amount, &method, &created.Status, &created.CreatedAt)
	if err == sql.ErrNoRows {
		// conflict: another delivery already recorded this transaction
		return r.GetByTransactionID(p.TransactionID)
	}
	if err != nil {
		return Payment{}, err
	}
	created.Method = method.String
	return created, nil
}
