package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

const ticketsSchema = `
CREATE TABLE IF NOT EXISTS tickets (
	id          BIGSERIAL PRIMARY KEY,
	subject     TEXT NOT NULL,
	client      TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	priority    TEXT NOT NULL DEFAULT 'medium',
	status      TEXT NOT NULL DEFAULT 'new',
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// InitPostgres connects to the local Postgres used for tickets. The hosted
// data service is not involved here.
func InitPostgres() error {

	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	var err error

	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			_, err = DB.Exec(ticketsSchema)
			return err
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err

}
