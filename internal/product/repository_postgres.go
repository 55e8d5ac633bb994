package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, description, price, stock, category_id, image_url, is_active, created_at::text, updated_at::text`

	listProductsQuery = `
        SELECT ` + productColumns + `
        FROM products
        WHERE is_active
        ORDER BY id
    `
	listProductsByCategoryQuery = `
        SELECT ` + productColumns + `
        FROM products
        WHERE is_active AND category_id = $1
        ORDER BY id
    `
	listActiveByIDsQuery = `
        SELECT ` + productColumns + `
        FROM products
        WHERE is_active AND id = ANY($1::int[])
        ORDER BY array_position($1::int[], id)
    `
	// guard clause makes the decrement safe against concurrent checkouts
	decrementStockQuery = `
        UPDATE products
        SET stock = stock - $1, updated_at = now()
        WHERE id = $2 AND stock >= $1
    `
	releaseStockQuery = `
        UPDATE products
        SET stock = stock + $1, updated_at = now()
        WHERE id = $2
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(categoryID *int) ([]Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = r.db.Query(listProductsByCategoryQuery, *categoryID)
	} else {
		rows, err = r.db.Query(listProductsQuery)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListActiveByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(listActiveByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresRepository) DecrementStock(productID, qty int) error {
	res, err := r.db.Exec(decrementStockQuery, qty, productID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *PostgresRepository) ReleaseStock(productID, qty int) error {
	res, err := r.db.Exec(releaseStockQuery, qty, productID)
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

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
