package cornershape

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/testutil"
	"github.com/felixgeelhaar/cornershape/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.Len(t, theme, 9)
	v, ok := theme.Lookup("2xl")
	assert.True(t, ok)
	assert.Equal(t, "1rem", v)
	_, ok = theme.Lookup("4xl")
	assert.False(t, ok)
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    Theme
		wantErr bool
	}{
		{
			name: "yaml fixture keeps order",
			data: string(testutil.LoadFixture(t, "theme.yaml")),
			want: Theme{{"none", "0px"}, {"sm", "0.125rem"}, {"DEFAULT", "0.25rem"}, {"card", "1.25rem"}, {"full", "9999px"}},
		},
		{
			name: "json top level",
			data: `{"xl": "0.75rem", "md": "0.375rem", "none": 0}`,
			want: Theme{{"xl", "0.75rem"}, {"md", "0.375rem"}, {"none", "0"}},
		},
		{
			name: "json nested",
			data: `{"borderRadius": {"lg": "0.5rem"}}`,
			want: Theme{{"lg", "0.5rem"}},
		},
		{name: "empty document", data: "", wantErr: true},
		{name: "sequence", data: "- 1\n- 2\n", wantErr: true},
		{name: "nested value", data: "lg:\n  a: b\n", wantErr: true},
		{name: "borderRadius not a map", data: "borderRadius: 4px\n", wantErr: true},
		{name: "empty mapping", data: "{}", wantErr: true},
		{name: "broken yaml", data: "lg: [\n", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTheme([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	fs := mocks.NewFileSystem()
	fs.AddFile("/app/theme.yaml", string(testutil.LoadFixture(t, "theme.yaml")))
	fs.AddFile("/app/bad.yaml", "- nope\n")
	fs.AddFile("/app/locked.yaml", "lg: 1px")
	fs.FailRead("/app/locked.yaml", errors.New("eacces"))

	theme, err := LoadTheme(fs, "/app/theme.yaml")
	require.NoError(t, err)
	assert.Len(t, theme, 5)

	_, err = LoadTheme(fs, "/app/bad.yaml")
	assert.True(t, config.IsUserError(err, config.ErrCodeThemeParse))
	assert.Contains(t, config.GetUserError(err).Context, "(line 1)")

	_, err = LoadTheme(fs, "/app/locked.yaml")
	assert.True(t, config.IsUserError(err, config.ErrCodeFileRead))
}
