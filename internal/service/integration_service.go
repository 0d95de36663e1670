package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TWRT/form-integrations/internal/client/aweber"
	"github.com/TWRT/form-integrations/internal/models"
)

var (
	ErrNoAccount      = errors.New("no AWeber account available for this token")
	ErrUnknownAccount = errors.New("unknown AWeber account")
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.ProviderAccount) (string, error)
	Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error)
	List(ctx context.Context, provider string) ([]models.ProviderAccount, error)
	Delete(ctx context.Context, provider, globalMultiID string) error
}

type AccountLookup interface {
	GetAccounts(ctx context.Context) ([]aweber.AweberAccount, error)
}

// IntegrationService manages the AWeber accounts forms can be connected to.
type IntegrationService struct {
	accounts  AccountRepository
	lists     ListSource
	newClient func(token string) AccountLookup
}

func NewIntegrationService(
	accounts AccountRepository,
	lists ListSource,
	newClient func(token string) AccountLookup,
) *IntegrationService {
	return &IntegrationService{
		accounts:  accounts,
		lists:     lists,
		newClient: newClient,
	}
}

// RegisterAweberAccount stores the token under a new global multi id.
// Without an account id the first account visible to the token is used.
func (s *IntegrationService) RegisterAweberAccount(ctx context.Context, name, token, accountID string) (*models.ProviderAccount, error) {
	if token == "" {
		return nil, errors.New("access token is required")
	}

	if accountID == "" {
		found, err := s.newClient(token).GetAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("discover account (aweber): %w", err)
		}
		if len(found) == 0 || found[0].Id == "" {
			return nil, ErrNoAccount
		}
		accountID = string(found[0].Id)
	}

	account := &models.ProviderAccount{
		Provider:    aweber.Slug,
		Name:        name,
		AccessToken: token,
		AccountID:   accountID,
	}
	if _, err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *IntegrationService) GetAweberAccounts(ctx context.Context) ([]models.ProviderAccount, error) {
	return s.accounts.List(ctx, aweber.Slug)
}

// DeleteAweberAccount removes a stored account. Forms pointing at it keep their settings
// but fetch no lists until another account is selected.
func (s *IntegrationService) DeleteAweberAccount(ctx context.Context, globalMultiID string) error {
	account, err := s.accounts.Get(ctx, aweber.Slug, globalMultiID)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, globalMultiID)
	}
	return s.accounts.Delete(ctx, aweber.Slug, globalMultiID)
}

func (s *IntegrationService) GetAweberLists(ctx context.Context, globalMultiID string) *models.ListCatalog {
	return s.lists.FetchLists(ctx, globalMultiID)
}
