package wishlist

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID int) ([]int, error) {
	_, err := r.db.Exec(`INSERT INTO wishlist (user_id, product_id)
        VALUES ($1,$2)
        ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID)
	if err != nil {
		return nil, err
	}
	return r.List(userID)
}

func (r *PostgresRepository) Remove(userID, productID int) ([]int, error) {
	_, err := r.db.Exec(`DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return nil, err
	}
	return r.List(userID)
}

func (r *PostgresRepository) List(userID int) ([]int, error) {
	rows, err := r.db.Query(`SELECT product_id FROM wishlist WHERE user_id = $1 ORDER BY product_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
