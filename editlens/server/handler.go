package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"editlens.dev/editlens/levenshtein"
)

// handler renders the playground page. Every request is computed from
// scratch; there is no state shared between requests.
type handler struct{}

type pageData struct {
	A, B     string
	HasInput bool
	Distance int
	Edits    []string
	// Header holds the elements of b; Rows holds one row label (the
	// element of a, blank for the first row) plus the table cells.
	Header []string
	Rows   []matrixRow
}

type matrixRow struct {
	Label string
	Cells []int
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
	case http.MethodHead:
	default:
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	if req.URL.Path != "/" {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	q := req.URL.Query()
	data := pageData{A: q.Get("a"), B: q.Get("b")}
	if q.Has("a") || q.Has("b") {
		data.HasInput = true
		x, y := []rune(data.A), []rune(data.B)
		m := levenshtein.NewMatrix(x, y)
		data.Distance = m.Distance()
		for _, e := range m.Script() {
			data.Edits = append(data.Edits, e.String())
		}
		for _, r := range y {
			data.Header = append(data.Header, string(r))
		}
		for i := 0; i < m.Rows(); i++ {
			row := matrixRow{Cells: make([]int, m.Cols())}
			if i > 0 {
				row.Label = string(x[i-1])
			}
			for j := 0; j < m.Cols(); j++ {
				row.Cells[j] = m.At(i, j)
			}
			data.Rows = append(data.Rows, row)
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		log.Printf("failed to render playground: %v", err)
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	if req.Method == http.MethodHead {
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

var page = template.Must(template.New("playground").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>editlens playground</title>
<style>
body { font-family: monospace; margin: 2rem; }
input { font-family: monospace; width: 20rem; }
table { border-collapse: collapse; margin-top: 1rem; }
td, th { border: 1px solid #ccc; padding: 0.2rem 0.5rem; text-align: right; }
th { background: #f5f5f5; }
ol { margin-top: 1rem; }
</style>
</head>
<body>
<h1>editlens</h1>
<form method="get" action="/">
<p><label>first string <input name="a" value="{{.A}}"></label></p>
<p><label>second string <input name="b" value="{{.B}}"></label></p>
<p><button type="submit">compare</button></p>
</form>
{{- if .HasInput}}
<p>distance: <strong>{{.Distance}}</strong></p>
{{- if .Edits}}
<ol>
{{- range .Edits}}
<li>{{.}}</li>
{{- end}}
</ol>
{{- else}}
<p>the strings are identical</p>
{{- end}}
<table>
<tr><th></th><th></th>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr><th>{{.Label}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))
