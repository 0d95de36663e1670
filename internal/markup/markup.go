// Package markup turns declarative option trees into the HTML fragments the
// integration settings modal displays.
package markup

import (
	"html/template"
	"strings"
)

const (
	TypeWrapper = "wrapper"
	TypeLabel   = "label"
	TypeSelect  = "select"
	TypeRaw     = "raw"
)

// Option is one node of an option tree. Which fields matter depends on Type.
type Option struct {
	Key               string
	Type              string
	ID                string
	Name              string
	For               string
	Class             string
	Style             string
	Value             string
	Selected          string
	IsNotFieldWrapper bool
	Choices           []Choice
	Elements          []Option
}

// Choice is one <option> of a select.
type Choice struct {
	Value string
	Label string
}

const templates = `
{{define "option"}}{{if eq .Type "wrapper"}}{{template "wrapper" .}}{{else if eq .Type "label"}}{{template "label" .}}{{else if eq .Type "select"}}{{template "select" .}}{{else if eq .Type "raw"}}{{raw .Value}}{{end}}{{end}}
{{define "wrapper"}}<div class="{{wrapperClass .}}"{{if .Style}} style="{{css .Style}}"{{end}}>{{range .Elements}}{{template "option" .}}{{end}}</div>{{end}}
{{define "label"}}<label for="{{.For}}" class="sui-label">{{.Value}}</label>{{end}}
{{define "select"}}{{$selected := .Selected}}<select id="{{.ID}}" name="{{.Name}}" class="{{.Class}}">{{range .Choices}}<option value="{{.Value}}"{{if eq .Value $selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>{{end}}
{{define "options"}}{{range .}}{{template "option" .}}{{end}}{{end}}
{{define "title"}}<div class="integration-header"><h3 class="sui-box-title sui-lg">{{.Title}}</h3>{{if .Subtitle}}<p class="sui-description">{{.Subtitle}}</p>{{end}}</div>{{end}}
{{define "button"}}<button type="button" class="{{.Class}}" data-action="{{.Action}}">{{if .Loading}}<span class="sui-loading-text">{{.Label}}</span><i class="sui-icon-loader sui-loading" aria-hidden="true"></i>{{else}}{{.Label}}{{end}}</button>{{end}}
`

var tmpl = template.Must(template.New("markup").Funcs(template.FuncMap{
	"raw": func(s string) template.HTML { return template.HTML(s) },
	"css": func(s string) template.CSS { return template.CSS(s) },
	"wrapperClass": func(o Option) string {
		if o.IsNotFieldWrapper {
			return o.Class
		}
		return strings.TrimSpace("sui-form-field " + o.Class)
	},
}).Parse(templates))

type Helper struct{}

func NewHelper() *Helper {
	return &Helper{}
}

// RenderOptions renders every node of the tree in order.
// Raw nodes are written as-is; everything else is escaped.
func (h *Helper) RenderOptions(options []Option) string {
	return execute("options", options)
}

func (h *Helper) ModalTitle(title, subtitle string) string {
	return execute("title", struct{ Title, Subtitle string }{title, subtitle})
}

// Button renders a modal action button. loading adds the spinner shown while the action runs.
func (h *Helper) Button(label, class, action string, loading bool) string {
	return execute("button", struct {
		Label, Class, Action string
		Loading              bool
	}{label, strings.TrimSpace("sui-button " + class), action, loading})
}

// execute writes into a strings.Builder, so the only possible failure is a broken
// template, which template.Must already rules out.
func execute(name string, data any) string {
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return ""
	}
	return sb.String()
}
