package messages

import (
	"testing"
	"testing/fstest"

	"github.com/midian/base/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, []string{"en", "zh-CN"}, tagStrings(c.Languages()))
}

func tagStrings(tags []language.Tag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"en_US", "en"},
		{"zh-CN", "zh-CN"},
		{"zh-Hans", "zh-CN"},
		{"zh", "zh-CN"},
		{"fr-FR", "en"},
		{"", "en"},
		{"not a locale!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			require.Equal(t, tt.want, c.Lookup(tt.locale).Lang.String())
		})
	}
}

func TestCatalog_Empty(t *testing.T) {
	table := NewCatalog().Lookup("en")
	require.Empty(t, Render(errors.HTTPStatus(500), table))
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(`
lang: de
messages:
  server-error: "Serverfehler"
`))
	require.NoError(t, err)
	require.Equal(t, "de", table.Lang.String())

	tmpl, ok := table.Template(KeyServer)
	require.True(t, ok)
	require.Equal(t, "Serverfehler", tmpl)
	require.Len(t, table.Missing(), 7)
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "lang: [unterminated"},
		{"invalid language", "lang: \"!!\"\nmessages: {}"},
		{"unknown key", "lang: en\nmessages:\n  teapot-error: \"I'm a teapot\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.data))
			require.Error(t, err)
			require.Equal(t, errors.KindParse, errors.GetKind(err))
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/a-zh.yaml": {Data: []byte("lang: zh-CN\nmessages:\n  server-error: \"服务器运行异常\"\n")},
		"tables/en.yaml":   {Data: []byte("lang: en\nmessages:\n  server-error: \"Server error\"\n")},
		"tables/notes.txt": {Data: []byte("ignored")},
	}

	c, err := LoadFS(fsys, "tables", "en.yaml")
	require.NoError(t, err)
	require.Equal(t, []string{"en", "zh-CN"}, tagStrings(c.Languages()))
}

func TestLoadFS_BadTable(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/en.yaml": {Data: []byte("lang: en\nmessages:\n  nope: \"x\"\n")},
	}

	_, err := LoadFS(fsys, "tables", "en.yaml")
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "tables/en.yaml", appErr.Context()["file"])
}

func TestKeys(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 8)
	require.Equal(t, KeyNetwork, keys[0])
	require.Equal(t, KeyServer, keys[7])

	for _, kind := range errors.Kinds() {
		key, ok := KeyFor(kind)
		require.True(t, ok)
		require.True(t, validKey(key))
	}
	_, ok := KeyFor(errors.Kind(0))
	require.False(t, ok)
}
