package service

import (
	"context"

	"github.com/TWRT/form-integrations/internal/markup"
	"github.com/TWRT/form-integrations/internal/models"
)

type SettingsStore interface {
	Get(ctx context.Context, formID, provider string) (models.FormSettings, error)
	Save(ctx context.Context, formID, provider string, values models.FormSettings) error
	Delete(ctx context.Context, formID, provider string) error
}

type AccountFinder interface {
	Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error)
}

type ListSource interface {
	FetchLists(ctx context.Context, globalMultiID string) *models.ListCatalog
}

type MarkupHelper interface {
	RenderOptions(options []markup.Option) string
	ModalTitle(title, subtitle string) string
	Button(label, class, action string, loading bool) string
}
