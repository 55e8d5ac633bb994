package wishlist

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	addEntryQuery = `
        INSERT INTO wishlist_items (user_id, product_id)
        VALUES ($1,$2)
        ON CONFLICT (user_id, product_id) DO NOTHING
    `
	listWishlistQuery = `
        SELECT wi.product_id, p.name, p.price, p.image_url, p.is_active
        FROM wishlist_items wi
        JOIN products p ON p.id = wi.product_id
        WHERE wi.user_id = $1
        ORDER BY wi.created_at DESC
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID int) error {
	_, err := r.db.Exec(addEntryQuery, userID, productID)
	return err
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotInWishlist
	}
	return nil
}

func (r *PostgresRepository) List(userID int) ([]Item, error) {
	rows, err := r.db.Query(listWishlistQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.ImageURL, &it.IsActive); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
