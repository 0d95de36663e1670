package models

// FormSettings are the provider settings stored for one form.
// A nil field was never set; an empty string was set to nothing.
type FormSettings struct {
	SelectedGlobalMultiID *string `json:"selected_global_multi_id,omitempty"`
	ListID                *string `json:"list_id,omitempty"`
	ListName              *string `json:"list_name,omitempty"`
}

// FormCompletionOptions must all be set for an integration to count as connected to a form.
var FormCompletionOptions = []string{"selected_global_multi_id", "list_id", "list_name"}

func (s FormSettings) Field(name string) *string {
	switch name {
	case "selected_global_multi_id":
		return s.SelectedGlobalMultiID
	case "list_id":
		return s.ListID
	case "list_name":
		return s.ListName
	}
	return nil
}

// Merge returns s with every field that is set in update copied over.
func (s FormSettings) Merge(update FormSettings) FormSettings {
	if update.SelectedGlobalMultiID != nil {
		s.SelectedGlobalMultiID = update.SelectedGlobalMultiID
	}
	if update.ListID != nil {
		s.ListID = update.ListID
	}
	if update.ListName != nil {
		s.ListName = update.ListName
	}
	return s
}

// IsConnected reports whether every completion option is present and list_id is not empty.
func (s FormSettings) IsConnected() bool {
	for _, name := range FormCompletionOptions {
		if s.Field(name) == nil {
			return false
		}
	}
	return !IsEmpty(s.ListID)
}

// IsEmpty treats unset, "" and "0" as empty, which is how submitted form values behave.
func IsEmpty(v *string) bool {
	return v == nil || *v == "" || *v == "0"
}

func StringPtr(s string) *string {
	return &s
}

func Deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// StepSubmission is the data posted for one wizard step.
type StepSubmission struct {
	ListID   *string `json:"list_id,omitempty"`
	IsSubmit bool    `json:"hustle_is_submit"`
}
