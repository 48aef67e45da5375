package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/midian/base/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog holds tables for several languages.
type Catalog struct {
	tables  []Table
	matcher language.Matcher
}

// NewCatalog creates a catalog. The first table is the fallback used when no
// language matches.
func NewCatalog(tables ...Table) *Catalog {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.Lang
	}
	return &Catalog{
		tables:  tables,
		matcher: language.NewMatcher(tags),
	}
}

// Languages returns the languages in the catalog, fallback first.
func (c *Catalog) Languages() []language.Tag {
	tags := make([]language.Tag, len(c.tables))
	for i, t := range c.tables {
		tags[i] = t.Lang
	}
	return tags
}

// Lookup returns the table that best matches locale, such as "zh-CN" or
// "en_US". Unparsable or unmatched locales get the fallback table. An empty
// catalog returns an empty table, which renders every error as "".
func (c *Catalog) Lookup(locale string) Table {
	if len(c.tables) == 0 {
		return Table{Lang: language.Und}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c.tables[0]
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return c.tables[0]
	}
	return c.tables[index]
}

// tableFile is the YAML layout of one table.
type tableFile struct {
	Lang     string            `yaml:"lang"`
	Messages map[string]string `yaml:"messages"`
}

// ParseTable decodes a YAML table. Unknown keys and unparsable languages are
// KindParse errors.
func ParseTable(data []byte) (Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Table{}, errors.Wrap(err, errors.KindParse, "failed to decode message table")
	}

	tag, err := language.Parse(file.Lang)
	if err != nil {
		return Table{}, errors.WithContext(
			errors.Wrap(err, errors.KindParse, "invalid message table language"),
			"lang", file.Lang,
		)
	}

	templates := make(map[Key]string, len(file.Messages))
	for k, v := range file.Messages {
		key := Key(k)
		if !validKey(key) {
			return Table{}, errors.WithContext(
				errors.Parse(fmt.Errorf("unknown message key %q", k)),
				"lang", file.Lang,
			)
		}
		templates[key] = v
	}
	return NewTable(tag, templates), nil
}

// LoadFS reads every *.yaml table in dir of fsys. Tables are ordered by file
// name, except that the table named by fallback (for example "en.yaml") is
// moved to the front when present.
func LoadFS(fsys fs.FS, dir, fallback string) (*Catalog, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "failed to list message tables")
	}
	sort.SliceStable(names, func(i, j int) bool {
		fi := path.Base(names[i]) == fallback
		fj := path.Base(names[j]) == fallback
		if fi != fj {
			return fi
		}
		return names[i] < names[j]
	})

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.WithContext(errors.Wrap(err, errors.KindIO, "failed to read message table"), "file", name)
		}
		table, err := ParseTable(data)
		if err != nil {
			return nil, errors.WithContext(err, "file", name)
		}
		tables = append(tables, table)
	}
	return NewCatalog(tables...), nil
}

// Default returns the built-in English and Simplified Chinese catalog.
// English is the fallback.
func Default() *Catalog {
	c, err := LoadFS(builtin, "locales", "en.yaml")
	if err != nil {
		panic("messages: built-in tables are invalid: " + err.Error())
	}
	return c
}
