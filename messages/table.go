package messages

import (
	"golang.org/x/text/language"
)

// Table holds the message templates of one language.
type Table struct {
	Lang      language.Tag
	Templates map[Key]string
}

// NewTable creates a table for lang from templates. The map is copied.
func NewTable(lang language.Tag, templates map[Key]string) Table {
	t := Table{Lang: lang, Templates: make(map[Key]string, len(templates))}
	for k, v := range templates {
		t.Templates[k] = v
	}
	return t
}

// Template returns the template registered for key.
func (t Table) Template(key Key) (string, bool) {
	tmpl, ok := t.Templates[key]
	if !ok || tmpl == "" {
		return "", false
	}
	return tmpl, true
}

// Missing lists the keys without a template, in kind tag order.
func (t Table) Missing() []Key {
	var missing []Key
	for _, key := range Keys() {
		if _, ok := t.Template(key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
