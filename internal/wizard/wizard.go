// Package wizard runs the settings steps that provider integrations expose for a form.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/TWRT/form-integrations/internal/models"
)

var (
	ErrUnknownProvider        = errors.New("unknown provider")
	ErrStepNotFound           = errors.New("wizard step not found")
	ErrPreviousStepIncomplete = errors.New("previous wizard step is not completed")
	ErrNotSupported           = errors.New("operation not supported by provider")
)

// Step is one screen of a provider's settings wizard.
type Step struct {
	Callback    func(ctx context.Context, submission models.StepSubmission) (models.WizardStepResult, error)
	IsCompleted func(ctx context.Context) (bool, error)
}

// StepHandler is implemented per provider and per form.
type StepHandler interface {
	WizardSteps() []Step
}

// Integration is a StepHandler that also manages the connection between a form and a provider account.
type Integration interface {
	StepHandler
	Settings(ctx context.Context) (models.FormSettings, error)
	IsFormConnected(ctx context.Context) (bool, error)
	RefreshLists(ctx context.Context) (*models.ListCatalog, error)
	SelectAccount(ctx context.Context, globalMultiID string) error
	Disconnect(ctx context.Context) error
}

type Factory func(formID string) StepHandler

type StepStatus struct {
	Index     int  `json:"index"`
	Completed bool `json:"completed"`
}

type Runner struct {
	factories map[string]Factory
}

func NewRunner() *Runner {
	return &Runner{factories: map[string]Factory{}}
}

func (r *Runner) Register(provider string, factory Factory) {
	r.factories[provider] = factory
}

func (r *Runner) Handler(provider, formID string) (StepHandler, error) {
	factory, ok := r.factories[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return factory(formID), nil
}

func (r *Runner) Integration(provider, formID string) (Integration, error) {
	handler, err := r.Handler(provider, formID)
	if err != nil {
		return nil, err
	}
	integration, ok := handler.(Integration)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, provider)
	}
	return integration, nil
}

// Run executes one step. Every earlier step has to report itself completed first.
func (r *Runner) Run(ctx context.Context, provider, formID string, index int, submission models.StepSubmission) (models.WizardStepResult, error) {
	handler, err := r.Handler(provider, formID)
	if err != nil {
		return models.WizardStepResult{}, err
	}

	steps := handler.WizardSteps()
	if index < 0 || index >= len(steps) {
		return models.WizardStepResult{}, fmt.Errorf("%w: %d", ErrStepNotFound, index)
	}

	for i := 0; i < index; i++ {
		done, err := steps[i].IsCompleted(ctx)
		if err != nil {
			return models.WizardStepResult{}, err
		}
		if !done {
			return models.WizardStepResult{}, fmt.Errorf("%w: %d", ErrPreviousStepIncomplete, i)
		}
	}

	return steps[index].Callback(ctx, submission)
}

func (r *Runner) Status(ctx context.Context, provider, formID string) ([]StepStatus, error) {
	handler, err := r.Handler(provider, formID)
	if err != nil {
		return nil, err
	}

	steps := handler.WizardSteps()
	statuses := make([]StepStatus, 0, len(steps))
	for i, step := range steps {
		done, err := step.IsCompleted(ctx)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, StepStatus{Index: i, Completed: done})
	}
	return statuses, nil
}
