package address

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const addressColumns = `address_id, user_id, full_name, phone, line1, city, postal_code, created_at, updated_at`

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(`SELECT `+addressColumns+` FROM address WHERE user_id = $1 ORDER BY address_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var a Address
		var city, postal sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.FullName, &a.Phone, &a.Line1, &city, &postal, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.City = city.String
		a.PostalCode = postal.String
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetForUser(id, userID int) (Address, error) {
	var a Address
	var city, postal sql.NullString
	err := r.db.QueryRow(`SELECT `+addressColumns+` FROM address WHERE address_id = $1 AND user_id = $2`, id, userID).
		Scan(&a.ID, &a.UserID, &a.FullName, &a.Phone, &a.Line1, &city, &postal, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	a.City = city.String
	a.PostalCode = postal.String
	return a, nil
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	err := r.db.QueryRow(`INSERT INTO address (user_id, full_name, phone, line1, city, postal_code, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING address_id`,
		a.UserID, a.FullName, a.Phone, a.Line1, a.City, a.PostalCode, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(a Address) (Address, error) {
	res, err := r.db.Exec(`UPDATE address SET full_name = $1, phone = $2, line1 = $3, city = $4, postal_code = $5, updated_at = $6 WHERE address_id = $7 AND user_id = $8`,
		a.FullName, a.Phone, a.Line1, a.City, a.PostalCode, a.UpdatedAt, a.ID, a.UserID)
	if err != nil {
		return Address{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (r *PostgresRepository) Delete(id, userID int) error {
	res, err := r.db.Exec(`DELETE FROM address WHERE address_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
