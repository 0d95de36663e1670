package client

import (
	"context"

	"github.com/TWRT/form-integrations/internal/models"
)

type ListsAPI interface {
	GetAccountLists(ctx context.Context, accountID string, query models.ListsQuery) (*models.ListsPage, error)
}

// ProviderFactory builds API clients from the credentials stored under a global multi id.
// GetAPI returns a nil ListsAPI when the credentials are missing or unusable.
type ProviderFactory interface {
	GetAPI(ctx context.Context, globalMultiID string) (ListsAPI, error)
	GetAccountID(ctx context.Context, globalMultiID string) (string, error)
}
