package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single-pair",
			in:   "kitten\nsitting\nn\n",
			want: "Enter two strings to compare:\n" +
				"first string: second string: \n" +
				"distance between \"kitten\" and \"sitting\": 3\n" +
				"minimum of 3 operations:\n" +
				"  1. substitute position 1's 'k' with 's'\n" +
				"  2. substitute position 5's 'e' with 'i'\n" +
				"  3. insert 'g' at position 7\n" +
				"compare another pair? (y/n): ",
		},
		{
			name: "identical-strings",
			in:   "same\nsame\nn\n",
			want: "Enter two strings to compare:\n" +
				"first string: second string: \n" +
				"distance between \"same\" and \"same\": 0\n" +
				"the strings are identical\n" +
				"compare another pair? (y/n): ",
		},
		{
			name: "empty-inputs-exit",
			in:   "\n\n",
			want: "Enter two strings to compare:\n" +
				"first string: second string: ",
		},
		{
			name: "continue-then-exit",
			in:   "cat\ncart\ny\n\n\n",
			want: "Enter two strings to compare:\n" +
				"first string: second string: \n" +
				"distance between \"cat\" and \"cart\": 1\n" +
				"minimum of 1 operations:\n" +
				"  1. insert 'r' at position 3\n" +
				"compare another pair? (y/n): \n" +
				"Enter two strings to compare:\n" +
				"first string: second string: ",
		},
		{
			name: "eof-mid-input",
			in:   "onlyone\n",
			want: "Enter two strings to compare:\n" +
				"first string: second string: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			if err := explain(strings.NewReader(tt.in), &out); err != nil {
				t.Fatalf("explain: %v", err)
			}
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("session transcript is different (-want, +got):\n%s", diff)
			}
		})
	}
}
