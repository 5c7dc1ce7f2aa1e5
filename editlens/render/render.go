// Package render produces standalone HTML reports of line-by-line file
// diffs with syntax highlighting.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/tdewolff/minify/v2"
	minifyhtml "github.com/tdewolff/minify/v2/html"
	"znkr.io/diff"
	"znkr.io/diff/textdiff"
)

// style maps token categories to the classes defined in the page template.
var style = map[chroma.TokenType]string{
	chroma.Keyword:        "hl-b",
	chroma.KeywordPseudo:  "",
	chroma.KeywordType:    "",
	chroma.NameClass:      "hl-b",
	chroma.NameNamespace:  "hl-b",
	chroma.NameTag:        "hl-b",
	chroma.NameBuiltin:    "hl-bl",
	chroma.LiteralString:  "hl-i",
	chroma.OperatorWord:   "hl-b",
	chroma.Comment:        "hl-ii",
	chroma.CommentPreproc: "",
}

// Line is a single row of a rendered diff: the edit operation, the 1-based
// line numbers in the left and right file (-1 when the line doesn't exist
// on that side) and the highlighted line content.
type Line struct {
	Op      diff.Op
	XLineNo int
	YLineNo int
	Content template.HTML
}

func (l *Line) IsMatch() bool  { return l.Op == diff.Match }
func (l *Line) IsDelete() bool { return l.Op == diff.Delete }
func (l *Line) IsInsert() bool { return l.Op == diff.Insert }

// DiffPage renders the diff of a and b as a standalone, minified HTML
// page. The lexer for syntax highlighting is chosen from nameA.
func DiffPage(nameA, nameB string, a, b []byte) ([]byte, error) {
	lines, err := diffLines(nameA, string(a), string(b))
	if err != nil {
		return nil, fmt.Errorf("diffing %s and %s: %v", nameA, nameB, err)
	}

	var buf bytes.Buffer
	data := struct {
		NameA, NameB string
		Lines        []Line
	}{nameA, nameB, lines}
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering report: %v", err)
	}

	minifier := minify.New()
	minifier.AddFunc("text/html", minifyhtml.Minify)
	out, err := minifier.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minifying report: %v", err)
	}
	return out, nil
}

func diffLines(name, a, b string) ([]Line, error) {
	hl := newHighlighter(name)

	edits := textdiff.Edits(a, b, textdiff.IndentHeuristic())

	ret := make([]Line, 0, len(edits))
	x, y := 0, 0
	for _, edit := range edits {
		content, err := hl.highlight(edit.Line)
		if err != nil {
			return nil, err
		}
		switch edit.Op {
		case diff.Match:
			ret = append(ret, Line{edit.Op, x + 1, y + 1, content})
			x++
			y++
		case diff.Delete:
			ret = append(ret, Line{edit.Op, x + 1, -1, content})
			x++
		case diff.Insert:
			ret = append(ret, Line{edit.Op, -1, y + 1, content})
			y++
		}
	}
	return ret, nil
}

type highlighter struct {
	lexer chroma.Lexer
}

func newHighlighter(filename string) *highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &highlighter{lexer: chroma.Coalesce(lexer)}
}

func (hl *highlighter) highlight(line string) (template.HTML, error) {
	it, err := hl.lexer.Tokenise(nil, line)
	if err != nil {
		return "", fmt.Errorf("tokenizing line: %v", err)
	}
	var sb strings.Builder
	for _, token := range it.Tokens() {
		class := class(token.Type)
		if class != "" {
			fmt.Fprintf(&sb, "<span class=\"%s\">", class)
		}
		sb.WriteString(html.EscapeString(token.Value))
		if class != "" {
			sb.WriteString("</span>")
		}
	}
	return template.HTML(sb.String()), nil
}

func class(t chroma.TokenType) string {
	if s, ok := style[t]; ok {
		return s
	}
	if s, ok := style[t.SubCategory()]; ok {
		return s
	}
	if s, ok := style[t.Category()]; ok {
		return s
	}
	return ""
}

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.NameA}} → {{.NameB}}</title>
<style>
body { font-family: monospace; margin: 1rem; }
table { border-collapse: collapse; width: 100%; }
td { padding: 0 0.5rem; white-space: pre-wrap; vertical-align: top; }
td.ln { color: #888; text-align: right; user-select: none; }
tr.del { background: #ffebe9; }
tr.ins { background: #dafbe1; }
.hl-b { font-weight: bold; }
.hl-i { font-style: italic; }
.hl-ii { font-style: italic; color: #666; }
.hl-bl { color: #036; }
</style>
</head>
<body>
<h1>{{.NameA}} → {{.NameB}}</h1>
<table>
{{- range .Lines}}
<tr class="{{if .IsDelete}}del{{else if .IsInsert}}ins{{end}}">
<td class="ln">{{if ge .XLineNo 0}}{{.XLineNo}}{{end}}</td>
<td class="ln">{{if ge .YLineNo 0}}{{.YLineNo}}{{end}}</td>
<td>{{if .IsDelete}}-{{else if .IsInsert}}+{{else}} {{end}}</td>
<td>{{.Content}}</td>
</tr>
{{- end}}
</table>
</body>
</html>
`))
