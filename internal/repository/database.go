package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("Error trying to open DB: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Error trying to connect: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS provider_accounts (
        global_multi_id TEXT NOT NULL,
        provider TEXT NOT NULL,
        name TEXT NOT NULL DEFAULT '',
        access_token TEXT NOT NULL,
        account_id TEXT NOT NULL DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        PRIMARY KEY (provider, global_multi_id)
    );

    CREATE TABLE IF NOT EXISTS form_settings (
        form_id TEXT NOT NULL,
        provider TEXT NOT NULL,
        selected_global_multi_id TEXT,
        list_id TEXT,
        list_name TEXT,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        PRIMARY KEY (form_id, provider)
    );
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("Error trying to create tables: %w", err)
	}
	return nil
}
