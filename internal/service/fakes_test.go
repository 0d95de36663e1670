package service

import (
	"context"
	"fmt"

	"github.com/TWRT/form-integrations/internal/client"
	"github.com/TWRT/form-integrations/internal/models"
)

type fakeListsAPI struct {
	pages      map[int]*models.ListsPage
	errAt      map[int]error
	starts     []int
	sizes      []int
	accountIDs []string
}

func (a *fakeListsAPI) GetAccountLists(ctx context.Context, accountID string, query models.ListsQuery) (*models.ListsPage, error) {
	a.starts = append(a.starts, query.Start)
	a.sizes = append(a.sizes, query.Size)
	a.accountIDs = append(a.accountIDs, accountID)
	if err := a.errAt[query.Start]; err != nil {
		return nil, err
	}
	if page, ok := a.pages[query.Start]; ok {
		return page, nil
	}
	return &models.ListsPage{}, nil
}

type fakeFactory struct {
	api       client.ListsAPI
	apiErr    error
	accountID string
}

func (f *fakeFactory) GetAPI(ctx context.Context, globalMultiID string) (client.ListsAPI, error) {
	return f.api, f.apiErr
}

func (f *fakeFactory) GetAccountID(ctx context.Context, globalMultiID string) (string, error) {
	return f.accountID, nil
}

func makePage(start, count, total int) *models.ListsPage {
	page := &models.ListsPage{TotalSize: total}
	for i := 0; i < count; i++ {
		id := fmt.Sprint(start + i)
		page.Entries = append(page.Entries, models.MailingList{ID: id, Name: "List " + id})
	}
	return page
}

type fakeStore struct {
	settings map[string]models.FormSettings
	saves    []models.FormSettings
	deletes  int
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{settings: map[string]models.FormSettings{}}
}

func (s *fakeStore) Get(ctx context.Context, formID, provider string) (models.FormSettings, error) {
	if s.err != nil {
		return models.FormSettings{}, s.err
	}
	return s.settings[formID+"/"+provider], nil
}

func (s *fakeStore) Save(ctx context.Context, formID, provider string, values models.FormSettings) error {
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, values)
	key := formID + "/" + provider
	s.settings[key] = s.settings[key].Merge(values)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, formID, provider string) error {
	s.deletes++
	delete(s.settings, formID+"/"+provider)
	return s.err
}

type fakeListSource struct {
	catalog *models.ListCatalog
	ids     []string
}

func (f *fakeListSource) FetchLists(ctx context.Context, globalMultiID string) *models.ListCatalog {
	f.ids = append(f.ids, globalMultiID)
	if f.catalog == nil {
		return models.NewListCatalog()
	}
	return f.catalog
}

type fakeAccounts map[string]*models.ProviderAccount

func (f fakeAccounts) Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error) {
	return f[globalMultiID], nil
}
