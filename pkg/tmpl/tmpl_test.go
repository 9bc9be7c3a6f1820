package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "viewing {{ .Title }} ({{ .Position }}/{{ .Total }})",
			data: struct {
				Title    string
				Position int
				Total    int
			}{Title: "Work", Position: 2, Total: 4},
			want: "viewing Work (2/4)",
		},
		{
			name: "no variables",
			tmpl: "static string",
			want: "static string",
		},
		{
			name: "upper and default",
			tmpl: `{{ upper (default "untitled" .Title) }}`,
			data: map[string]string{"Title": ""},
			want: "UNTITLED",
		},
		{
			name: "join",
			tmpl: `{{ join .Tags ", " }}`,
			data: map[string][]string{"Tags": {"a", "b"}},
			want: "a, b",
		},
		{
			name: "shell quote",
			tmpl: "open {{ shq .URL }}",
			data: map[string]string{"URL": "mailto:o'neil@example.com"},
			want: `open 'mailto:o'\''neil@example.com'`,
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{},
			wantErr: true,
		},
		{
			name:    "invalid syntax",
			tmpl:    "{{ .Name",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Reuse(t *testing.T) {
	tpl, err := Parse("{{ .N }}")
	require.NoError(t, err)

	for _, n := range []string{"1", "2"} {
		got, err := tpl.Render(map[string]string{"N": n})
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
