// Package larr: order-preserving YAML adapter for nested mappings. Key
// order in the document is the insertion order of the decoded Mapping and
// therefore the label order of the resulting array.

package larr

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// MappingFromYAML decodes a YAML document into an ordered Mapping. The
// document root must be a mapping; leaves must be numeric scalars, null
// (decoded as NaN) or flat numeric sequences.
func MappingFromYAML(data []byte) (*Mapping, error) {
	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("MappingFromYAML: %w", err)
	}
	v, err := fromYAMLValue(root)
	if err != nil {
		return nil, fmt.Errorf("MappingFromYAML: %w", err)
	}
	m, ok := v.(*Mapping)
	if !ok {
		return nil, fmt.Errorf("MappingFromYAML: document root is %T: %w", root, ErrBadValue)
	}

	return m, nil
}

// fromYAMLValue converts a decoded YAML node into a Mapping value kind.
func fromYAMLValue(v any) (any, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := NewMapping()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			cv, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			if err = m.Set(key, cv); err != nil {
				return nil, err
			}
		}

		return m, nil

	case []any:
		seq := make([]float64, len(t))
		for i, e := range t {
			f, ok := asFloat(e)
			if !ok {
				return nil, fmt.Errorf("sequence element %T: %w", e, ErrBadValue)
			}
			seq[i] = f
		}

		return seq, nil

	case nil:
		return math.NaN(), nil

	default:
		if f, ok := asFloat(t); ok {
			return f, nil
		}

		return nil, fmt.Errorf("node %T: %w", v, ErrBadValue)
	}
}

// asFloat widens the scalar kinds the YAML decoder produces.
func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}

// ToYAML renders the mapping as a YAML document with keys in insertion
// order. NaN leaves render as null.
func (m *Mapping) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(toYAMLValue(m))
	if err != nil {
		return nil, fmt.Errorf("ToYAML: %w", err)
	}

	return out, nil
}

// toYAMLValue converts a Mapping value kind into the marshaler's node form.
func toYAMLValue(v any) any {
	switch t := v.(type) {
	case *Mapping:
		ms := make(yaml.MapSlice, 0, len(t.keys))
		for _, k := range t.keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAMLValue(t.vals[k])})
		}

		return ms
	case float64:
		if math.IsNaN(t) {
			return nil
		}

		return t
	case []float64:
		seq := make([]any, len(t))
		for i, f := range t {
			seq[i] = toYAMLValue(f)
		}

		return seq
	default:
		return v
	}
}

// FromYAML decodes a YAML document straight into a labeled array
// (MappingFromYAML followed by FromMapping).
func FromYAML(data []byte, opts ...Option) (*Array, error) {
	m, err := MappingFromYAML(data)
	if err != nil {
		return nil, err
	}

	return FromMapping(m, opts...)
}

// ToYAML renders the array as an order-preserving YAML document via
// ToMapping; NaN padding cells are omitted as ToMapping drops them.
func (a *Array) ToYAML() ([]byte, error) {
	m, err := a.ToMapping()
	if err != nil {
		return nil, err
	}

	return m.ToYAML()
}
