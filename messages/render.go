package messages

import (
	"strings"

	"github.com/midian/base/errors"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Render returns the user facing message for err from table.
//
// The template is chosen by the error's kind; errors that are not AppErrors
// render as KindRuntime. Templates containing a formatting verb receive the
// error code, written with the table's digits but without grouping. Render returns "" when err
// is nil or no template is registered, and never panics.
func Render(err error, table Table) (msg string) {
	if err == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()

	key, ok := KeyFor(errors.GetKind(err))
	if !ok {
		return ""
	}
	tmpl, ok := table.Template(key)
	if !ok {
		return ""
	}
	if !hasVerb(tmpl) {
		return strings.ReplaceAll(tmpl, "%%", "%")
	}
	return message.NewPrinter(table.Lang).Sprintf(tmpl, number.Decimal(errors.GetCode(err), number.NoSeparator()))
}

// hasVerb reports whether s contains a formatting verb other than "%%". A
// trailing "%" is literal.
func hasVerb(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 == len(s) {
			return false
		}
		if s[i+1] == '%' {
			i++
			continue
		}
		return true
	}
	return false
}
