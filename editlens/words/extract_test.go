package words

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
		},
		{
			name: "plain-words",
			in:   "the quick brown fox",
			want: []string{"the", "quick", "brown", "fox"},
		},
		{
			name: "lowercases",
			in:   "Fox FOX fox",
			want: []string{"fox", "fox", "fox"},
		},
		{
			name: "camel-case",
			in:   "editScriptBuilder",
			want: []string{"edit", "script", "builder"},
		},
		{
			name: "acronym-prefix",
			in:   "XMLParser parseHTTPResponse",
			want: []string{"xml", "parser", "parse", "http", "response"},
		},
		{
			name: "separators",
			in:   "word_count some-flag $jquery snake_case_name",
			want: []string{"word", "count", "some", "flag", "jquery", "snake", "case", "name"},
		},
		{
			name: "digits-dropped",
			in:   "base64 sha256sum utf8 plain",
			want: []string{"plain"},
		},
		{
			name: "code-line",
			in:   "func (s *Stats) AddFile(text string) {",
			want: []string{"func", "s", "stats", "add", "file", "text", "string"},
		},
		{
			name: "multiline",
			in:   "first line\n\nsecondLine\n",
			want: []string{"first", "line", "second", "line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract result is different (-want, +got):\n%s", diff)
			}
		})
	}
}
