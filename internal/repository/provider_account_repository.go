package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TWRT/form-integrations/internal/models"
	"github.com/google/uuid"
)

type ProviderAccountRepository struct {
	db *sql.DB
}

func NewProviderAccountRepository(db *sql.DB) *ProviderAccountRepository {
	return &ProviderAccountRepository{db: db}
}

// Create stores the account under a freshly generated global multi id and returns it.
func (r *ProviderAccountRepository) Create(ctx context.Context, account *models.ProviderAccount) (string, error) {
	if account.GlobalMultiID == "" {
		account.GlobalMultiID = uuid.NewString()
	}

	query := `
		INSERT INTO provider_accounts (global_multi_id, provider, name, access_token, account_id)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.GlobalMultiID,
		account.Provider,
		account.Name,
		account.AccessToken,
		account.AccountID,
	)
	if err != nil {
		return "", fmt.Errorf("Error trying to create the provider account: %w", err)
	}

	return account.GlobalMultiID, nil
}

// Get returns nil without error when no account is stored under the id.
func (r *ProviderAccountRepository) Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error) {
	query := `
		SELECT global_multi_id, provider, name, access_token, account_id, created_at
		FROM provider_accounts WHERE provider = ? AND global_multi_id = ?
	`

	var a models.ProviderAccount
	err := r.db.QueryRowContext(ctx, query, provider, globalMultiID).Scan(
		&a.GlobalMultiID,
		&a.Provider,
		&a.Name,
		&a.AccessToken,
		&a.AccountID,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Error trying to get provider account: %w", err)
	}

	return &a, nil
}

func (r *ProviderAccountRepository) List(ctx context.Context, provider string) ([]models.ProviderAccount, error) {
	query := `
		SELECT global_multi_id, provider, name, access_token, account_id, created_at
		FROM provider_accounts WHERE provider = ? ORDER BY created_at, global_multi_id
	`

	rows, err := r.db.QueryContext(ctx, query, provider)
	if err != nil {
		return nil, fmt.Errorf("Error trying to list provider accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.ProviderAccount{}
	for rows.Next() {
		var a models.ProviderAccount
		if err := rows.Scan(&a.GlobalMultiID, &a.Provider, &a.Name, &a.AccessToken, &a.AccountID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan provider account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *ProviderAccountRepository) Delete(ctx context.Context, provider, globalMultiID string) error {
	query := `DELETE FROM provider_accounts WHERE provider = ? AND global_multi_id = ?`
	if _, err := r.db.ExecContext(ctx, query, provider, globalMultiID); err != nil {
		return fmt.Errorf("delete provider account: %w", err)
	}
	return nil
}
