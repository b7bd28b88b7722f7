package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Extra is one value of a user-appended column.
type Extra struct {
	Key   string
	Value string
}

// Row is one job request. The nine fixed fields are named; values of extra
// columns are kept in the order they were added. On the wire a Row is a
// single flat object of string values.
type Row struct {
	Job       string
	Submitted string
	Status    string
	Submitter string
	URL       string
	Assigned  string
	Priority  string
	Due       string
	Value     string

	Extras []Extra
}

// field returns a pointer to the fixed field named key, or nil.
func (r *Row) field(key string) *string {
	switch key {
	case KeyJob:
		return &r.Job
	case KeySubmitted:
		return &r.Submitted
	case KeyStatus:
		return &r.Status
	case KeySubmitter:
		return &r.Submitter
	case KeyURL:
		return &r.URL
	case KeyAssigned:
		return &r.Assigned
	case KeyPriority:
		return &r.Priority
	case KeyDue:
		return &r.Due
	case KeyValue:
		return &r.Value
	}
	return nil
}

// Get returns the value stored under key. ok is false for an extra key the
// row has no value for.
func (r Row) Get(key string) (string, bool) {
	if p := r.field(key); p != nil {
		return *p, true
	}
	for _, e := range r.Extras {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Cell returns the value of key, or "" when absent.
func (r Row) Cell(key string) string {
	v, _ := r.Get(key)
	return v
}

// With returns a copy of r with key set to value. The receiver is not
// modified.
func (r Row) With(key, value string) Row {
	out := r
	out.Extras = append([]Extra(nil), r.Extras...)
	if p := out.field(key); p != nil {
		*p = value
		return out
	}
	for i := range out.Extras {
		if out.Extras[i].Key == key {
			out.Extras[i].Value = value
			return out
		}
	}
	out.Extras = append(out.Extras, Extra{Key: key, Value: value})
	return out
}

// Has reports whether the row carries key.
func (r Row) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

func (r Row) clone() Row {
	r.Extras = append([]Extra(nil), r.Extras...)
	return r
}

// MarshalJSON writes fixed fields first, then extras in order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(i int, key, value string) error {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	for i, key := range FixedKeys {
		if err := write(i, key, *r.field(key)); err != nil {
			return nil, err
		}
	}
	for i, e := range r.Extras {
		if err := write(len(FixedKeys)+i, e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat object of strings. Keys that are not fixed
// fields become extras in document order. Any non-string value is an error.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("row: expected object, got %v", tok)
	}

	out := Row{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		value, ok := tok.(string)
		if !ok {
			return fmt.Errorf("row: field %q is %T, want string", key, tok)
		}
		out.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// UnmarshalYAML reads a mapping of scalars, keeping extra keys in document
// order. Unquoted numbers are taken as their literal text; null is "".
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("row: line %d: expected mapping", node.Line)
	}
	out := Row{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("row: line %d: field %q must be a scalar", v.Line, k.Value)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		out.set(k.Value, value)
	}
	*r = out
	return nil
}

// set assigns in place; used only while decoding.
func (r *Row) set(key, value string) {
	if p := r.field(key); p != nil {
		*p = value
		return
	}
	for i := range r.Extras {
		if r.Extras[i].Key == key {
			r.Extras[i].Value = value
			return
		}
	}
	r.Extras = append(r.Extras, Extra{Key: key, Value: value})
}
