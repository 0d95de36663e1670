package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TWRT/form-integrations/internal/models"
)

type FormSettingsRepository struct {
	db *sql.DB
}

func NewFormSettingsRepository(db *sql.DB) *FormSettingsRepository {
	return &FormSettingsRepository{db: db}
}

// Get returns the stored settings, or empty settings when the form has none yet.
func (r *FormSettingsRepository) Get(ctx context.Context, formID, provider string) (models.FormSettings, error) {
	query := `
		SELECT selected_global_multi_id, list_id, list_name
		FROM form_settings WHERE form_id = ? AND provider = ?
	`

	var multiID, listID, listName sql.NullString
	err := r.db.QueryRowContext(ctx, query, formID, provider).Scan(&multiID, &listID, &listName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FormSettings{}, nil
	}
	if err != nil {
		return models.FormSettings{}, fmt.Errorf("get form settings: %w", err)
	}

	return models.FormSettings{
		SelectedGlobalMultiID: nullable(multiID),
		ListID:                nullable(listID),
		ListName:              nullable(listName),
	}, nil
}

// Save merges values into the stored settings. Fields left nil keep their stored value.
func (r *FormSettingsRepository) Save(ctx context.Context, formID, provider string, values models.FormSettings) error {
	query := `
		INSERT INTO form_settings (form_id, provider, selected_global_multi_id, list_id, list_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (form_id, provider) DO UPDATE SET
			selected_global_multi_id = COALESCE(excluded.selected_global_multi_id, form_settings.selected_global_multi_id),
			list_id = COALESCE(excluded.list_id, form_settings.list_id),
			list_name = COALESCE(excluded.list_name, form_settings.list_name),
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		formID,
		provider,
		nullString(values.SelectedGlobalMultiID),
		nullString(values.ListID),
		nullString(values.ListName),
	)
	if err != nil {
		return fmt.Errorf("save form settings: %w", err)
	}
	return nil
}

func (r *FormSettingsRepository) Delete(ctx context.Context, formID, provider string) error {
	query := `DELETE FROM form_settings WHERE form_id = ? AND provider = ?`
	if _, err := r.db.ExecContext(ctx, query, formID, provider); err != nil {
		return fmt.Errorf("delete form settings: %w", err)
	}
	return nil
}

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
