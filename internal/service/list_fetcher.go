package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TWRT/form-integrations/internal/client"
	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/TWRT/form-integrations/internal/metrics"
	"github.com/TWRT/form-integrations/internal/models"
)

const listPageSize = 100

var ErrWrongCredentials = errors.New("Wrong API credentials")

// ListFetcher pages through a provider account's mailing lists.
type ListFetcher struct {
	provider string
	factory  client.ProviderFactory
	logger   logging.Logger
	metrics  *metrics.IntegrationMetrics
}

func NewListFetcher(provider string, factory client.ProviderFactory, logger logging.Logger, m *metrics.IntegrationMetrics) *ListFetcher {
	return &ListFetcher{
		provider: provider,
		factory:  factory,
		logger:   logger,
		metrics:  m,
	}
}

// FetchLists returns every list of the account behind globalMultiID.
// Any failure is logged and yields an empty catalog; pages already read are dropped.
func (f *ListFetcher) FetchLists(ctx context.Context, globalMultiID string) *models.ListCatalog {
	lists, err := f.fetchAll(ctx, globalMultiID)
	if err != nil {
		result := "api_error"
		if errors.Is(err, ErrWrongCredentials) {
			result = "no_credentials"
		}
		f.metrics.IncListFetch(f.provider, result)
		f.logger.WithFields(logging.Fields{
			"context":         f.provider + ".FetchLists",
			"global_multi_id": globalMultiID,
			"error":           err.Error(),
		}).Warn("Failed to fetch mailing lists")
		return models.NewListCatalog()
	}

	f.metrics.IncListFetch(f.provider, "success")
	return lists
}

func (f *ListFetcher) fetchAll(ctx context.Context, globalMultiID string) (*models.ListCatalog, error) {
	api, err := f.factory.GetAPI(ctx, globalMultiID)
	if err != nil {
		return nil, err
	}
	if api == nil {
		return nil, ErrWrongCredentials
	}

	accountID, err := f.factory.GetAccountID(ctx, globalMultiID)
	if err != nil {
		return nil, err
	}

	lists := models.NewListCatalog()
	offset := 0
	for {
		page, err := f.fetchPage(ctx, api, accountID, offset)
		if err != nil {
			return nil, err
		}
		for _, l := range page.Entries {
			lists.Set(l.ID, l.Name)
		}

		offset += listPageSize
		if page.TotalSize <= offset {
			break
		}
	}
	return lists, nil
}

func (f *ListFetcher) fetchPage(ctx context.Context, api client.ListsAPI, accountID string, offset int) (*models.ListsPage, error) {
	f.metrics.IncListPage()
	page, err := api.GetAccountLists(ctx, accountID, models.ListsQuery{Start: offset, Size: listPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch lists page at offset %d: %w", offset, err)
	}
	if page == nil {
		return &models.ListsPage{}, nil
	}
	return page, nil
}
