// Package i18n translates the strings shown in the integration settings modal.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	ChooseYourList     = "Choose your list"
	ChooseYourListHelp = "Choose the list you want to send form data to."
	EmailList          = "Email List"
	EmailListRequired  = "The email list is required."
	Refresh            = "Refresh"
	Disconnect         = "Disconnect"
	Save               = "Save"
)

var translations = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		ChooseYourList:     "Escolha sua lista",
		ChooseYourListHelp: "Escolha a lista para a qual deseja enviar os dados do formulário.",
		EmailList:          "Lista de e-mail",
		EmailListRequired:  "A lista de e-mail é obrigatória.",
		Refresh:            "Atualizar",
		Disconnect:         "Desconectar",
		Save:               "Salvar",
	},
}

type Translator struct {
	printer *message.Printer
}

func NewTranslator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Translator{printer: message.NewPrinter(tag, message.Catalog(modalCatalog))}
}

// T returns the translation of a source string, or the string itself when none exists.
func (t *Translator) T(key string) string {
	if t == nil || t.printer == nil {
		return key
	}
	return t.printer.Sprintf(key)
}

var modalCatalog = mustCatalog(newCatalog())

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("add %s translation %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

func mustCatalog(c catalog.Catalog, err error) catalog.Catalog {
	if err != nil {
		panic(err)
	}
	return c
}
