package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNodes is returned when documentation JSON cannot be decoded.
var ErrInvalidNodes = errors.New("invalid documentation nodes")

// Kind is the discriminant of a DocNode.
type Kind string

// Recognized node kinds. Any other value is rendered as an empty fragment.
const (
	KindModuleDoc Kind = "moduleDoc"
	KindFunction  Kind = "function"
	KindVariable  Kind = "variable"
	KindEnum      Kind = "enum"
	KindClass     Kind = "class"
	KindTypeAlias Kind = "typeAlias"
	KindNamespace Kind = "namespace"
	KindInterface Kind = "interface"
	KindImport    Kind = "import"
)

// DocNode is one documentation-bearing entity extracted from a module.
type DocNode struct {
	Kind      Kind       `json:"kind"`
	Name      string     `json:"name"`
	Location  *Location  `json:"location,omitempty"`
	JsDoc     *JsDoc     `json:"jsDoc,omitempty"`
	ImportDef *ImportDef `json:"importDef,omitempty"`
}

// Location points at the declaration in its source module.
type Location struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
}

// ImportDef is carried by import nodes.
type ImportDef struct {
	Src      string `json:"src"`
	Imported string `json:"imported,omitempty"`
}

// JsDoc is the structured comment block attached to a node.
type JsDoc struct {
	Doc  string `json:"doc,omitempty"`
	Tags []Tag  `json:"tags,omitempty"`
}

// Tag is one annotation within a comment block. Every field other than Kind
// is optional: pointer fields are present when non-nil, slice fields are
// present when non-nil (an empty JSON array decodes to a non-nil slice).
// Doc is treated as absent when empty.
type Tag struct {
	Kind   string   `json:"kind"`
	Name   *string  `json:"name,omitempty"`
	Value  *Scalar  `json:"value,omitempty"`
	Type   *string  `json:"type,omitempty"`
	Doc    string   `json:"doc,omitempty"`
	Params []Param  `json:"params,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. A name, value or type given
// as null is still present and renders as the text null.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type plain Tag
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	isNull := func(key string) bool {
		raw, ok := fields[key]
		return ok && string(bytes.TrimSpace(raw)) == "null"
	}
	if p.Name == nil && isNull("name") {
		p.Name = StringPtr("null")
	}
	if p.Value == nil && isNull("value") {
		p.Value = ScalarPtr("null")
	}
	if p.Type == nil && isNull("type") {
		p.Type = StringPtr("null")
	}

	*t = Tag(p)
	return nil
}

// Param describes one parameter within a signature-bearing tag. Type and
// Default are treated as absent when empty.
type Param struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
	Type     string `json:"type,omitempty"`
	Default  string `json:"default,omitempty"`
}

// Scalar is a tag value. It decodes from a JSON string, number or boolean
// and keeps the textual form. Numbers are written the way JavaScript prints
// them, so 1.0 reads as 1 and 1e3 as 1000.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("tag value %s: %w", data, err)
		}
		*s = Scalar(formatNumber(f))
		return nil
	}
	*s = Scalar(data)
	return nil
}

// formatNumber prints f like JavaScript's Number#toString: the shortest
// round-trip digits, with exponent notation outside [1e-6, 1e21).
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the textual form of the value.
func (s Scalar) String() string {
	return string(s)
}

// StringPtr returns a pointer to s, for building optional tag fields.
func StringPtr(s string) *string {
	return &s
}

// ScalarPtr returns a pointer to a Scalar holding s.
func ScalarPtr(s string) *Scalar {
	v := Scalar(s)
	return &v
}

// docEnvelope is the versioned output of newer deno doc releases.
type docEnvelope struct {
	Version int       `json:"version"`
	Nodes   []DocNode `json:"nodes"`
}

// DecodeNodes decodes documentation JSON. It accepts either a bare array of
// nodes or an object of the form {"version": N, "nodes": [...]}.
func DecodeNodes(data []byte) ([]DocNode, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidNodes)
	}

	switch trimmed[0] {
	case '[':
		var nodes []DocNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNodes, err)
		}
		return nodes, nil
	case '{':
		var env docEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNodes, err)
		}
		if env.Nodes == nil {
			return nil, fmt.Errorf("%w: object without a nodes array", ErrInvalidNodes)
		}
		return env.Nodes, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrInvalidNodes)
	}
}
