package product

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, product_name, product_desc, product_price, category, product_img, sizes, colors, rating, created_at, updated_at`

func (r *PostgresRepository) List(f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM product`
	args := []interface{}{}
	where := ""
	if f.Category != "" {
		args = append(args, f.Category)
		where = fmt.Sprintf(` WHERE category = $%d`, len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		if where == "" {
			where = fmt.Sprintf(` WHERE product_name ILIKE $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND product_name ILIKE $%d`, len(args))
		}
	}
	rows, err := r.db.Query(query+where+` ORDER BY product_id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM product WHERE product_id = $1`, id)
	var p Product
	if err := scanProduct(row.Scan, &p); err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// ListByIDs returns products in the same order as the ids argument.
func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM product
        WHERE product_id = ANY($1::int[])
        ORDER BY array_position($1::int[], product_id)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) Categories() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT category FROM product WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO product (product_name, product_desc, product_price, category, product_img, sizes, colors, rating, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING product_id`,
		p.Name, p.Description, p.Price, p.Category, p.Image, pq.Array(p.Sizes), pq.Array(p.Colors), p.Rating, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE product SET product_name = $1, product_desc = $2, product_price = $3, category = $4, product_img = $5, sizes = $6, colors = $7, updated_at = $8 WHERE product_id = $9`,
		p.Name, p.Description, p.Price, p.Category, p.Image, pq.Array(p.Sizes), pq.Array(p.Colors), p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM product WHERE product_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(scan func(dest ...interface{}) error, p *Product) error {
	var sizes, colors pq.StringArray
	var img, createdAt, updatedAt sql.NullString
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &img, &sizes, &colors, &p.Rating, &createdAt, &updatedAt); err != nil {
		return err
	}
	p.Image = img.String
	p.Sizes = sizes
	p.Colors = colors
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return nil
}
