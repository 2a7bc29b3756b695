package graph

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/graphexport/pkg/errors"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name  string
		nodes map[string]string
		want  []string
	}{
		{
			name:  "Empty",
			nodes: map[string]string{},
			want:  []string{},
		},
		{
			name:  "Nil",
			nodes: nil,
			want:  []string{},
		},
		{
			name:  "SortedByKey",
			nodes: map[string]string{"b": "B", "a": "A"},
			want:  []string{"A", "B"},
		},
		{
			name:  "KeysNotValues",
			nodes: map[string]string{"n2": "alpha", "n1": "zulu", "n10": "mike"},
			want:  []string{"zulu", "mike", "alpha"},
		},
		{
			name:  "ByteOrder",
			nodes: map[string]string{"a": "lower", "B": "upper", "_": "underscore"},
			want:  []string{"upper", "underscore", "lower"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Assemble(tt.nodes, []string{})
			if g.Nodes == nil {
				t.Fatal("Nodes is nil, want empty slice")
			}
			if !slices.Equal(g.Nodes, tt.want) {
				t.Errorf("Nodes = %v, want %v", g.Nodes, tt.want)
			}
		})
	}
}

func TestAssembleDeterministic(t *testing.T) {
	first := Assemble(map[string]int{"c": 3, "a": 1, "b": 2, "d": 4}, 0)
	for range 20 {
		m := map[string]int{}
		for _, k := range []string{"d", "b", "c", "a"} {
			m[k] = int(k[0] - 'a' + 1)
		}
		if got := Assemble(m, 0); !slices.Equal(got.Nodes, first.Nodes) {
			t.Fatalf("Nodes = %v, want %v", got.Nodes, first.Nodes)
		}
	}
}

func TestAssemblePassesEdgesThrough(t *testing.T) {
	edges := []Edge{{From: "x", To: "unknown"}}
	g := Assemble(map[string]Node{"a": {ID: "a"}}, edges)

	if &g.Edges[0] != &edges[0] {
		t.Error("Edges should alias the input slice")
	}

	var nilEdges []Edge
	if got := Assemble(map[string]Node{}, nilEdges); got.Edges != nil {
		t.Errorf("Edges = %v, want nil passed through", got.Edges)
	}
}

func TestReadDocument(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		input     string
		wantNodes int
		wantEdges int
		wantCode  errors.Code
		check     func(t *testing.T, d Document)
	}{
		{
			name:   "JSON",
			format: FormatJSON,
			input: `{
				"nodes": [
					{"id": "A", "meta": {"version": "1.0", "tags": ["x", "y"]}},
					{"id": "B", "label": "Bee"}
				],
				"edges": [
					{"from": "A", "to": "B", "label": "DEPENDS_ON"}
				]
			}`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, d Document) {
				if d.Nodes[0].Meta["version"] != "1.0" {
					t.Errorf("version = %v, want 1.0", d.Nodes[0].Meta["version"])
				}
				if got := d.Nodes[1].DisplayLabel(); got != "Bee" {
					t.Errorf("DisplayLabel() = %q, want Bee", got)
				}
				if got, want := d.Edges[0].Key(), (EdgeKey{From: "A", To: "B", Label: "DEPENDS_ON"}); got != want {
					t.Errorf("Key() = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:   "YAML",
			format: FormatYAML,
			input: `
nodes:
  - id: A
    meta:
      version: "1.0"
      tags: [x, y]
  - id: B
edges:
  - from: A
    to: B
`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, d Document) {
				tags, ok := d.Nodes[0].Meta["tags"].([]any)
				if !ok || !reflect.DeepEqual(tags, []any{"x", "y"}) {
					t.Errorf("tags = %#v, want [x y]", d.Nodes[0].Meta["tags"])
				}
				if got, want := d.Edges[0].Key(), (EdgeKey{From: "A", To: "B"}); got != want {
					t.Errorf("Key() = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:      "EmptyYAML",
			format:    FormatYAML,
			input:     "",
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name:     "InvalidJSON",
			format:   FormatJSON,
			input:    `{invalid json}`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "MissingID",
			format:   FormatJSON,
			input:    `{"nodes": [{"label": "nameless"}], "edges": []}`,
			wantCode: errors.ErrCodeInvalidGraph,
		},
		{
			name:     "UnknownFormat",
			format:   "xml",
			input:    `<graph/>`,
			wantCode: errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadDocument(strings.NewReader(tt.input), tt.format)

			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadDocument: %v", err)
			}

			if got := len(d.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(d.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, d)
			}
		})
	}
}

func TestJSONAndYAMLDecodeAlike(t *testing.T) {
	tests := []struct {
		name string
		json string
		yaml string
	}{
		{
			name: "Strings",
			json: `{"nodes":[{"id":"a","meta":{"k":"v"}}],"edges":[{"from":"a","to":"a"}]}`,
			yaml: "nodes:\n  - id: a\n    meta: {k: v}\nedges:\n  - {from: a, to: a}\n",
		},
		{
			name: "Numbers",
			json: `{"nodes":[{"id":"a","meta":{"big":12345678901234567891,"n":3,"neg":-7,"f":1.5,"list":[1,"x"]}}],"edges":[]}`,
			yaml: "nodes:\n  - id: a\n    meta: {big: 12345678901234567891, n: 3, neg: -7, f: 1.5, list: [1, x]}\nedges: []\n",
		},
		{
			name: "NestedMaps",
			json: `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"a","meta":{"by":{"1":"x","k":{"2":true}}}}]}`,
			yaml: "nodes:\n  - id: a\nedges:\n  - from: a\n    to: a\n    meta: {by: {1: x, k: {2: true}}}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := ReadDocument(strings.NewReader(tt.json), FormatJSON)
			if err != nil {
				t.Fatalf("json: %v", err)
			}
			y, err := ReadDocument(strings.NewReader(tt.yaml), FormatYAML)
			if err != nil {
				t.Fatalf("yaml: %v", err)
			}
			if !reflect.DeepEqual(j, y) {
				t.Errorf("json = %#v\nyaml = %#v", j, y)
			}
		})
	}
}

func TestReadDocumentLargeInteger(t *testing.T) {
	d, err := ReadDocument(strings.NewReader(`{"nodes":[{"id":"a","meta":{"big":12345678901234567891,"id":9007199254740993}}],"edges":[]}`), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Nodes[0].Meta["big"]; got != uint64(12345678901234567891) {
		t.Errorf("big = %#v, want uint64(12345678901234567891)", got)
	}
	if got := d.Nodes[0].Meta["id"]; got != int64(9007199254740993) {
		t.Errorf("id = %#v, want int64(9007199254740993)", got)
	}
}

func TestReadDocumentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yml")
	if err := os.WriteFile(path, []byte("nodes:\n  - id: A\nedges: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := ReadDocumentFile(path)
	if err != nil {
		t.Fatalf("ReadDocumentFile: %v", err)
	}
	if len(d.Nodes) != 1 {
		t.Errorf("nodes = %d, want 1", len(d.Nodes))
	}
}

func TestReadDocumentFileNotFound(t *testing.T) {
	_, err := ReadDocumentFile(filepath.Join(t.TempDir(), "nonexistent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"graph.json", FormatJSON},
		{"graph.yaml", FormatYAML},
		{"graph.YML", FormatYAML},
		{"graph", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEdgeKeyString(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want string
	}{
		{name: "Unlabelled", edge: Edge{From: "a", To: "b"}, want: `["a","b"]`},
		{name: "Labelled", edge: Edge{From: "a", To: "b", Label: "DEPENDS_ON"}, want: `["a","b","DEPENDS_ON"]`},
		{name: "Separators", edge: Edge{From: "x", To: "pkg:a"}, want: `["x","pkg:a"]`},
		{name: "Quotes", edge: Edge{From: `a"b`, To: "c"}, want: `["a\"b","c"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.Key().String(); got != tt.want {
				t.Errorf("Key().String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEdgeKeyDistinct(t *testing.T) {
	edges := []Edge{
		{From: "x", To: "pkg:a"},
		{From: "x", To: "pkg", Label: "a"},
		{From: "a->b", To: "c"},
		{From: "a", To: "b->c"},
	}
	keys := map[EdgeKey]bool{}
	strs := map[string]bool{}
	for _, e := range edges {
		keys[e.Key()] = true
		strs[e.Key().String()] = true
	}
	if len(keys) != len(edges) || len(strs) != len(edges) {
		t.Errorf("distinct keys = %d, strings = %d, want %d", len(keys), len(strs), len(edges))
	}
}
