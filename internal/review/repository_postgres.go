package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(rv Review) (Review, error) {
	err := r.db.QueryRow(`INSERT INTO reviews (product_id, user_id, order_id, rating, comment, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING review_id`,
		rv.ProductID, rv.UserID, rv.OrderID, rv.Rating, rv.Comment, rv.CreatedAt).Scan(&rv.ID)
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(`SELECT review_id, product_id, user_id, order_id, rating, comment, created_at
        FROM reviews WHERE product_id = $1 ORDER BY review_id DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rv Review
		var comment, createdAt sql.NullString
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.OrderID, &rv.Rating, &comment, &createdAt); err != nil {
			return nil, err
		}
		rv.Comment = comment.String
		rv.CreatedAt = createdAt.String
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Exists(userID, orderID, productID int) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND order_id = $2 AND product_id = $3`,
		userID, orderID, productID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
