package address

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	addressColumns = `id, user_id, recipient, phone, street,
        COALESCE(province_code,''), COALESCE(province_name,''),
        COALESCE(regency_code,''), COALESCE(regency_name,''),
        COALESCE(district_code,''), COALESCE(district_name,''),
        COALESCE(postal_code,''), created_at::text, updated_at::text`

	insertAddressQuery = `
        INSERT INTO addresses (user_id, recipient, phone, street, province_code, province_name,
            regency_code, regency_name, district_code, district_name, postal_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING ` + addressColumns

	updateAddressQuery = `
        UPDATE addresses
        SET recipient=$3, phone=$4, street=$5, province_code=$6, province_name=$7,
            regency_code=$8, regency_name=$9, district_code=$10, district_name=$11,
            postal_code=$12, updated_at=now()
        WHERE user_id=$1 AND id=$2
        RETURNING ` + addressColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	row := r.db.QueryRow(insertAddressQuery, a.UserID, a.Recipient, a.Phone, a.Street,
		a.ProvinceCode, a.ProvinceName, a.RegencyCode, a.RegencyName,
		a.DistrictCode, a.DistrictName, a.PostalCode)
	return scanAddress(row.Scan)
}

func (r *PostgresRepository) Update(userID, addressID int, a Address) (Address, error) {
	row := r.db.QueryRow(updateAddressQuery, userID, addressID, a.Recipient, a.Phone, a.Street,
		a.ProvinceCode, a.ProvinceName, a.RegencyCode, a.RegencyName,
		a.DistrictCode, a.DistrictName, a.PostalCode)
	updated, err := scanAddress(row.Scan)
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	return updated, err
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	res, err := r.db.Exec(`DELETE FROM addresses WHERE user_id = $1 AND id = $2`, userID, addressID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAddress(scan func(dest ...any) error) (Address, error) {
	var a Address
	err := scan(&a.ID, &a.UserID, &a.Recipient, &a.Phone, &a.Street,
		&a.ProvinceCode, &a.ProvinceName, &a.RegencyCode, &a.RegencyName,
		&a.DistrictCode, &a.DistrictName, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}
