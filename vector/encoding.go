package vector

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// String renders the elements as a bracketed, comma-separated list such as
// "[1, 2, 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.live() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems())
}

// UnmarshalJSON replaces the contents of v with the elements of a JSON
// array. The capacity is set to the decoded length.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return errors.Wrap(err, "vector: decode json")
	}
	v.assign(elems)
	return nil
}

// MarshalYAML encodes the elements as a YAML sequence.
func (v *Vector[T]) MarshalYAML() (interface{}, error) {
	return v.elems(), nil
}

// UnmarshalYAML replaces the contents of v with the elements of a YAML
// sequence. The capacity is set to the decoded length.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return errors.Wrap(err, "vector: decode yaml")
	}
	v.assign(elems)
	return nil
}

// elems returns the live elements, never nil, so empty vectors encode as
// empty sequences.
func (v *Vector[T]) elems() []T {
	if s := v.live(); s != nil {
		return s
	}
	return []T{}
}
