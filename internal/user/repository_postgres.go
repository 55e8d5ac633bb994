package user

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `id, email, password, first_name, last_name, phone, created_at::text, updated_at::text`

	insertUserQuery = `
        INSERT INTO users (email, password, first_name, last_name, phone)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING ` + userColumns

	updateUserQuery = `
        UPDATE users
        SET first_name=$2, last_name=$3, phone=$4, updated_at=now()
        WHERE id=$1
        RETURNING ` + userColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.scanOne(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.scanOne(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	created, err := r.scanOne(r.db.QueryRow(insertUserQuery, u.Email, u.Password, u.FirstName, u.LastName, u.Phone))
	if err != nil && isUniqueViolation(err) {
		return User{}, ErrEmailExists
	}
	return created, err
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	return r.scanOne(r.db.QueryRow(updateUserQuery, id, u.FirstName, u.LastName, u.Phone))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
