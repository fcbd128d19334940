package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/cavanisc/ficha-treino/internal/config"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the configured database and makes sure the state table
// exists. The default is a local sqlite file under ~/.config/ficha; pointing
// the config at a libsql URL syncs the same blob through Turso instead.
func NewStorage() *Storage {
	godotenv.Load() // Optional .env, mostly for FICHA_DATABASE_URL in dev.

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	driver := cfg.DB.Driver
	url := cfg.DB.ConnectionString
	if env := os.Getenv("FICHA_DATABASE_URL"); env != "" {
		driver = "libsql"
		url = env
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

// InitializeDB creates the single key-value table the whole app state lives
// in: one row, one JSON blob.
func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS app_state (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}
