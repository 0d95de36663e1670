package aweber

import (
	"context"
	"fmt"

	"github.com/TWRT/form-integrations/internal/client"
	"github.com/TWRT/form-integrations/internal/models"
)

const Slug = "aweber"

type AccountStore interface {
	Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error)
}

// Provider builds AWeber clients from the account stored under a global multi id.
type Provider struct {
	accounts AccountStore
	opts     []Option
}

func NewProvider(accounts AccountStore, opts ...Option) *Provider {
	return &Provider{accounts: accounts, opts: opts}
}

func (p *Provider) account(ctx context.Context, globalMultiID string) (*models.ProviderAccount, error) {
	if globalMultiID == "" {
		return nil, nil
	}
	account, err := p.accounts.Get(ctx, Slug, globalMultiID)
	if err != nil {
		return nil, fmt.Errorf("get account %s (aweber): %w", globalMultiID, err)
	}
	return account, nil
}

// GetAPI returns nil without error when no usable token is stored under globalMultiID.
func (p *Provider) GetAPI(ctx context.Context, globalMultiID string) (client.ListsAPI, error) {
	token, err := p.GetSetting(ctx, "api_key", "", globalMultiID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return NewAweberClient(token, p.opts...), nil
}

func (p *Provider) GetAccountID(ctx context.Context, globalMultiID string) (string, error) {
	return p.GetSetting(ctx, "account_id", "", globalMultiID)
}

// GetSetting reads one credential of the stored account, or defaultValue when it is missing.
func (p *Provider) GetSetting(ctx context.Context, name, defaultValue, globalMultiID string) (string, error) {
	account, err := p.account(ctx, globalMultiID)
	if err != nil {
		return defaultValue, err
	}
	if account == nil {
		return defaultValue, nil
	}

	var value string
	switch name {
	case "api_key", "access_token":
		value = account.AccessToken
	case "account_id":
		value = account.AccountID
	case "name":
		value = account.Name
	}
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}
