package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSelectMarksSelectedChoice(t *testing.T) {
	h := NewHelper()

	html := h.RenderOptions([]Option{{
		Type:     TypeSelect,
		ID:       "list_id",
		Name:     "list_id",
		Class:    "sui-select",
		Selected: "2",
		Choices: []Choice{
			{Value: "1", Label: "One"},
			{Value: "2", Label: "Two"},
		},
	}})

	assert.Equal(t,
		`<select id="list_id" name="list_id" class="sui-select"><option value="1">One</option><option value="2" selected>Two</option></select>`,
		html)
}

func TestRenderNestedWrappers(t *testing.T) {
	h := NewHelper()

	html := h.RenderOptions([]Option{{
		Type:  TypeWrapper,
		Style: "margin-bottom: 0;",
		Elements: []Option{
			{Type: TypeLabel, For: "list_id", Value: "Email List"},
			{Type: TypeWrapper, Class: "hui-select-refresh", IsNotFieldWrapper: true, Elements: []Option{
				{Type: TypeRaw, Value: `<button>Refresh</button>`},
			}},
		},
	}})

	assert.Equal(t,
		`<div class="sui-form-field" style="margin-bottom: 0;"><label for="list_id" class="sui-label">Email List</label><div class="hui-select-refresh"><button>Refresh</button></div></div>`,
		html)
}

func TestRenderEscapesListNames(t *testing.T) {
	h := NewHelper()

	html := h.RenderOptions([]Option{{
		Type:    TypeSelect,
		Choices: []Choice{{Value: "1", Label: `<script>alert("x")</script>`}},
	}})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestModalTitle(t *testing.T) {
	h := NewHelper()

	assert.Equal(t,
		`<div class="integration-header"><h3 class="sui-box-title sui-lg">Choose your list</h3><p class="sui-description">Pick one.</p></div>`,
		h.ModalTitle("Choose your list", "Pick one."))
	assert.NotContains(t, h.ModalTitle("Title", ""), "sui-description")
}

func TestButton(t *testing.T) {
	h := NewHelper()

	assert.Equal(t,
		`<button type="button" class="sui-button sui-button-ghost" data-action="disconnect_form"><span class="sui-loading-text">Disconnect</span><i class="sui-icon-loader sui-loading" aria-hidden="true"></i></button>`,
		h.Button("Disconnect", "sui-button-ghost", "disconnect_form", true))
	assert.Equal(t,
		`<button type="button" class="sui-button" data-action="next">Save</button>`,
		h.Button("Save", "", "next", false))
}
