package graph

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// FormatFromPath picks the document encoding from a file extension.
// Anything other than .yaml or .yml is treated as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadDocumentFile reads and decodes the document at path.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadDocument(f, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

// ReadDocument decodes a document from r in the given format.
// Every node must carry a non-empty ID. ReadDocument does not close r.
func ReadDocument(r io.Reader, format string) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return Document{}, errors.New(errors.ErrCodeUnsupported, "unsupported document format: %q", format)
	}

	for i, n := range doc.Nodes {
		if n.ID == "" {
			return Document{}, errors.New(errors.ErrCodeInvalidGraph, "node %d: missing id", i)
		}
		normalizeMeta(n.Meta)
	}
	for _, e := range doc.Edges {
		normalizeMeta(e.Meta)
	}
	return doc, nil
}

// normalizeMeta rewrites decoded meta values in place so JSON and YAML input
// produce the same Go values.
func normalizeMeta(meta map[string]any) {
	for k, v := range meta {
		meta[k] = normalizeValue(v)
	}
}

// normalizeValue maps numbers to int64, then uint64, then float64, whichever
// holds the value exactly first, and turns maps with non-string keys (YAML
// allows them) into map[string]any.
func normalizeValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case int:
		return int64(v)
	case map[string]any:
		normalizeMeta(v)
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeValue(item)
		}
		return v
	}
	return v
}
