package service

import (
	"context"

	"github.com/TWRT/form-integrations/internal/i18n"
	"github.com/TWRT/form-integrations/internal/markup"
	"github.com/TWRT/form-integrations/internal/models"
)

// firstStepOptions fetches the catalog and describes the list selector of step 0.
// The fetched catalog is kept on s so a submit can resolve the list name.
func (s *AweberFormSettings) firstStepOptions(ctx context.Context, current models.FormSettings) []markup.Option {
	s.lists = s.deps.Lists.FetchLists(ctx, models.Deref(s.addonFormSettings.SelectedGlobalMultiID))
	selected := selectedList(current)

	choices := make([]markup.Choice, 0, s.lists.Len())
	for _, l := range s.lists.Lists() {
		choices = append(choices, markup.Choice{Value: l.ID, Label: l.Name})
	}

	return []markup.Option{{
		Key:   "list_id_setup",
		Type:  markup.TypeWrapper,
		Style: "margin-bottom: 0;",
		Elements: []markup.Option{
			{
				Key:   "label",
				Type:  markup.TypeLabel,
				For:   "list_id",
				Value: s.t(i18n.EmailList),
			},
			{
				Key:               "wrapper",
				Type:              markup.TypeWrapper,
				Class:             "hui-select-refresh",
				IsNotFieldWrapper: true,
				Elements: []markup.Option{
					{
						Key:      "lists",
						Type:     markup.TypeSelect,
						ID:       "list_id",
						Name:     "list_id",
						Class:    "sui-select",
						Value:    selected,
						Selected: selected,
						Choices:  choices,
					},
					{
						Key:   "refresh",
						Type:  markup.TypeRaw,
						Value: s.deps.Markup.Button(s.t(i18n.Refresh), "", "refresh_list", true),
					},
				},
			},
		},
	}}
}

func selectedList(current models.FormSettings) string {
	if models.IsEmpty(current.ListID) {
		return ""
	}
	return *current.ListID
}
