package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/shoplite/shop-backend/internal/address"
	"github.com/shoplite/shop-backend/internal/cart"
	"github.com/shoplite/shop-backend/internal/checkout"
	"github.com/shoplite/shop-backend/internal/config"
	"github.com/shoplite/shop-backend/internal/order"
	"github.com/shoplite/shop-backend/internal/product"
	"github.com/shoplite/shop-backend/internal/review"
	"github.com/shoplite/shop-backend/internal/user"
	"github.com/shoplite/shop-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cart.NewPostgresRepository(db), productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db))
	orderHandler := order.NewHandler(orderService)

	addressService := address.NewService(address.NewPostgresRepository(db))
	addressHandler := address.NewHandler(addressService)

	checkoutService := checkout.NewService(cartService, orderService, addressService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	reviewService := review.NewService(review.NewPostgresRepository(db), orderService)
	reviewHandler := review.NewHandler(reviewService)

	wishlistService := wishlist.NewService(wishlist.NewPostgresRepository(db), productService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	// public surface: auth, catalog browsing, product reviews
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)

	// admin console surface, gated per-handler on the is_admin claim
	orderHandler.RegisterAdminRoutes(app)
	productHandler.RegisterAdminRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%s)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the tables this backend needs. New installations get
// the full schema; existing ones are left untouched.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            "userId" SERIAL PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            "fullName" TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            "isAdmin" BOOLEAN NOT NULL DEFAULT FALSE,
            "createdAt" TEXT,
            "updatedAt" TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS product (
            product_id SERIAL PRIMARY KEY,
            product_name TEXT NOT NULL,
            product_desc TEXT NOT NULL DEFAULT '',
            product_price NUMERIC NOT NULL DEFAULT 0,
            category TEXT NOT NULL DEFAULT '',
            product_img TEXT,
            sizes TEXT[] NOT NULL DEFAULT '{}',
            colors TEXT[] NOT NULL DEFAULT '{}',
            rating NUMERIC NOT NULL DEFAULT 0,
            created_at TEXT,
            updated_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            user_id INT PRIMARY KEY,
            items JSONB NOT NULL DEFAULT '[]',
            shipping_method TEXT NOT NULL DEFAULT 'standard',
            updated_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            order_id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL UNIQUE,
            user_id INT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            shipping_address JSONB NOT NULL DEFAULT '{}',
            subtotal NUMERIC NOT NULL DEFAULT 0,
            shipping_fee NUMERIC NOT NULL DEFAULT 0,
            tax NUMERIC NOT NULL DEFAULT 0,
            discount NUMERIC NOT NULL DEFAULT 0,
            total NUMERIC NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            shipping_method TEXT NOT NULL,
            tracking_number TEXT,
            created_at TEXT,
            updated_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS address (
            address_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL,
            full_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            line1 TEXT NOT NULL,
            city TEXT,
            postal_code TEXT,
            created_at TEXT,
            updated_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            review_id SERIAL PRIMARY KEY,
            product_id INT NOT NULL,
            user_id INT NOT NULL,
            order_id INT NOT NULL,
            rating INT NOT NULL,
            comment TEXT,
            created_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS wishlist (
            user_id INT NOT NULL,
            product_id INT NOT NULL,
            PRIMARY KEY (user_id, product_id)
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
