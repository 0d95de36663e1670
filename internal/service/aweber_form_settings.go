package service

import (
	"context"
	"fmt"
	"html"

	"github.com/TWRT/form-integrations/internal/client/aweber"
	"github.com/TWRT/form-integrations/internal/i18n"
	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/TWRT/form-integrations/internal/metrics"
	"github.com/TWRT/form-integrations/internal/models"
	"github.com/TWRT/form-integrations/internal/wizard"
)

type FormSettingsDeps struct {
	Store      SettingsStore
	Accounts   AccountFinder
	Lists      ListSource
	Markup     MarkupHelper
	Translator *i18n.Translator
	Logger     logging.Logger
	Metrics    *metrics.IntegrationMetrics
}

// AweberFormSettings is the AWeber settings wizard of a single form.
// It keeps the loaded settings in memory, so build one per request.
type AweberFormSettings struct {
	formID            string
	deps              FormSettingsDeps
	addonFormSettings models.FormSettings
	lists             *models.ListCatalog
}

func NewAweberFormSettings(formID string, deps FormSettingsDeps) *AweberFormSettings {
	return &AweberFormSettings{
		formID: formID,
		deps:   deps,
		lists:  models.NewListCatalog(),
	}
}

// NewAweberFactory adapts NewAweberFormSettings to the wizard runner.
func NewAweberFactory(deps FormSettingsDeps) wizard.Factory {
	return func(formID string) wizard.StepHandler {
		return NewAweberFormSettings(formID, deps)
	}
}

func (s *AweberFormSettings) WizardSteps() []wizard.Step {
	return []wizard.Step{
		{
			Callback:    s.FirstStepCallback,
			IsCompleted: s.IsFirstStepCompleted,
		},
	}
}

// LoadedSettings is the in-memory view from the last load, including unsaved preliminary values.
func (s *AweberFormSettings) LoadedSettings() models.FormSettings {
	return s.addonFormSettings
}

func (s *AweberFormSettings) load(ctx context.Context) error {
	settings, err := s.deps.Store.Get(ctx, s.formID, aweber.Slug)
	if err != nil {
		return err
	}
	s.addonFormSettings = settings
	return nil
}

func (s *AweberFormSettings) Settings(ctx context.Context) (models.FormSettings, error) {
	if err := s.load(ctx); err != nil {
		return models.FormSettings{}, err
	}
	return s.addonFormSettings, nil
}

// IsFirstStepCompleted only looks at list_id; IsFormConnected checks every completion option.
func (s *AweberFormSettings) IsFirstStepCompleted(ctx context.Context) (bool, error) {
	if err := s.load(ctx); err != nil {
		return false, err
	}
	if s.addonFormSettings.ListID == nil {
		// preliminary value
		s.addonFormSettings.ListID = models.StringPtr("0")
		return false, nil
	}
	if models.IsEmpty(s.addonFormSettings.ListID) {
		return false, nil
	}
	return true, nil
}

func (s *AweberFormSettings) IsFormConnected(ctx context.Context) (bool, error) {
	if err := s.load(ctx); err != nil {
		return false, err
	}
	return s.addonFormSettings.IsConnected(), nil
}

func (s *AweberFormSettings) FirstStepCallback(ctx context.Context, submission models.StepSubmission) (models.WizardStepResult, error) {
	if err := s.load(ctx); err != nil {
		return models.WizardStepResult{}, err
	}
	current := s.currentData(submission)
	isSubmit := submission.IsSubmit

	var errorMessage string
	if isSubmit && models.IsEmpty(submission.ListID) {
		errorMessage = s.t(i18n.EmailListRequired)
	}

	options := s.firstStepOptions(ctx, current)

	stepHTML := s.deps.Markup.ModalTitle(s.t(i18n.ChooseYourList), s.t(i18n.ChooseYourListHelp))
	stepHTML += s.deps.Markup.RenderOptions(options)

	hasErrors := errorMessage != ""
	if hasErrors {
		stepHTML += `<span class="sui-error-message">` + html.EscapeString(errorMessage) + `</span>`
	}

	result := models.WizardStepResult{
		HTML: stepHTML,
		Buttons: map[string]models.StepButton{
			"disconnect": {Markup: s.deps.Markup.Button(s.t(i18n.Disconnect), "sui-button-ghost", "disconnect_form", true)},
			"save":       {Markup: s.deps.Markup.Button(s.t(i18n.Save), "", "next", true)},
		},
		HasErrors: hasErrors,
	}

	if !isSubmit {
		return result, nil
	}
	if hasErrors {
		s.deps.Metrics.IncStepSubmission(aweber.Slug, "validation_error")
		return result, nil
	}

	if !models.IsEmpty(current.ListID) {
		current.ListName = models.StringPtr(s.listName(*current.ListID))
	}
	if err := s.deps.Store.Save(ctx, s.formID, aweber.Slug, current); err != nil {
		return models.WizardStepResult{}, fmt.Errorf("save aweber form settings: %w", err)
	}
	s.addonFormSettings = s.addonFormSettings.Merge(current)
	s.deps.Metrics.IncStepSubmission(aweber.Slug, "saved")

	s.deps.Logger.WithFields(logging.Fields{
		"form_id": s.formID,
		"list_id": models.Deref(current.ListID),
	}).Info("AWeber list saved for form")

	return result, nil
}

// currentData starts from the step's fields and takes the submitted value,
// falling back to the stored one.
func (s *AweberFormSettings) currentData(submission models.StepSubmission) models.FormSettings {
	current := models.FormSettings{ListID: models.StringPtr("")}
	if submission.ListID != nil {
		current.ListID = models.StringPtr(*submission.ListID)
	} else if s.addonFormSettings.ListID != nil {
		current.ListID = models.StringPtr(*s.addonFormSettings.ListID)
	}
	return current
}

func (s *AweberFormSettings) listName(listID string) string {
	if name, ok := s.lists.Name(listID); ok && name != "" {
		return name + " (" + listID + ")"
	}
	return listID
}

// RefreshLists fetches the catalog of the form's selected account.
func (s *AweberFormSettings) RefreshLists(ctx context.Context) (*models.ListCatalog, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.lists = s.deps.Lists.FetchLists(ctx, models.Deref(s.addonFormSettings.SelectedGlobalMultiID))
	return s.lists, nil
}

// SelectAccount points the form at another stored account. Switching accounts clears the chosen list.
func (s *AweberFormSettings) SelectAccount(ctx context.Context, globalMultiID string) error {
	account, err := s.deps.Accounts.Get(ctx, aweber.Slug, globalMultiID)
	if err != nil {
		return fmt.Errorf("look up aweber account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, globalMultiID)
	}

	if err := s.load(ctx); err != nil {
		return err
	}

	update := models.FormSettings{SelectedGlobalMultiID: models.StringPtr(globalMultiID)}
	if models.Deref(s.addonFormSettings.SelectedGlobalMultiID) != globalMultiID && s.addonFormSettings.ListID != nil {
		update.ListID = models.StringPtr("")
		update.ListName = models.StringPtr("")
	}
	if err := s.deps.Store.Save(ctx, s.formID, aweber.Slug, update); err != nil {
		return fmt.Errorf("select aweber account: %w", err)
	}
	s.addonFormSettings = s.addonFormSettings.Merge(update)
	return nil
}

func (s *AweberFormSettings) Disconnect(ctx context.Context) error {
	if err := s.deps.Store.Delete(ctx, s.formID, aweber.Slug); err != nil {
		return fmt.Errorf("disconnect aweber form: %w", err)
	}
	s.addonFormSettings = models.FormSettings{}

	s.deps.Logger.WithFields(logging.Fields{"form_id": s.formID}).Info("AWeber disconnected from form")
	return nil
}

func (s *AweberFormSettings) t(key string) string {
	return s.deps.Translator.T(key)
}
