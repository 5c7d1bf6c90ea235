package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// schema holds the feed tables, in creation order.
var schema = []string{
	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	`
	CREATE TABLE IF NOT EXISTS feed_restaurants (
		object_id   TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		address1    TEXT NOT NULL DEFAULT '',
		suburb      TEXT NOT NULL DEFAULT '',
		cuisines    TEXT[] NOT NULL DEFAULT '{}',
		image_link  TEXT NOT NULL DEFAULT '',
		open_time   VARCHAR(16) NOT NULL,
		close_time  VARCHAR(16) NOT NULL,
		position    INT NOT NULL DEFAULT 0,
		updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`,
	// -------------------------------
	// DEALS
	// -------------------------------
	`
	CREATE TABLE IF NOT EXISTS feed_deals (
		object_id      TEXT PRIMARY KEY,
		restaurant_id  TEXT NOT NULL REFERENCES feed_restaurants(object_id) ON DELETE CASCADE,
		discount       TEXT NOT NULL DEFAULT '',
		dine_in        BOOLEAN NOT NULL DEFAULT FALSE,
		lightning      BOOLEAN NOT NULL DEFAULT FALSE,
		qty_left       BIGINT NOT NULL DEFAULT 0 CHECK (qty_left >= 0),
		start_time     VARCHAR(16) NULL,
		end_time       VARCHAR(16) NULL,
		open_time      VARCHAR(16) NULL,
		close_time     VARCHAR(16) NULL,
		position       INT NOT NULL DEFAULT 0,
		updated_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`,
	`
	CREATE INDEX IF NOT EXISTS feed_deals_restaurant_idx
		ON feed_deals (restaurant_id, position)
	`,
}

// initSchema creates the feed tables if they are missing
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
