package dsl

import (
	pongo2 "github.com/flosch/pongo2/v6"
)

// Render renders a template string with the provided data using pongo2.
// Pipeline files may reference parameters as {{ name }}; a nil data map
// renders the template unchanged.
func Render(tmpl string, data map[string]any) (string, error) {
	if len(data) == 0 {
		return tmpl, nil
	}
	pl, err := pongo2.FromString(tmpl)
	if err != nil {
		return "", err
	}
	return pl.Execute(pongo2.Context(data))
}
