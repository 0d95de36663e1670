package models

type StepButton struct {
	Markup string `json:"markup"`
}

// WizardStepResult is what a wizard step hands back to the settings modal.
type WizardStepResult struct {
	HTML      string                `json:"html"`
	Buttons   map[string]StepButton `json:"buttons"`
	HasErrors bool                  `json:"has_errors"`
}
