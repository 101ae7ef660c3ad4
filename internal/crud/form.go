package crud

import (
	"fmt"
	"strings"
)

// Field is one editable form field. Key is the wire name, Label a message id.
type Field struct {
	Key   string
	Label string
}

// Form holds the current text of every field, in schema order.
type Form struct {
	fields []Field
	values map[string]string
}

// NewForm returns a form with every field empty.
func NewForm(fields []Field) Form {
	f := Form{fields: fields}
	f.Reset()
	return f
}

// Fields returns the form fields in display order.
func (f Form) Fields() []Field {
	return f.fields
}

// Get returns the value of key, or "" if unset.
func (f Form) Get(key string) string {
	return f.values[key]
}

// Set updates the value of key. Unknown keys are ignored.
func (f *Form) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		return
	}
	f.values[key] = value
}

// Reset clears every field.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		f.values[fld.Key] = ""
	}
}

// Values returns a copy of the field values.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Missing returns the fields whose value is blank after trimming.
func (f Form) Missing() []Field {
	var missing []Field
	for _, fld := range f.fields {
		if strings.TrimSpace(f.values[fld.Key]) == "" {
			missing = append(missing, fld)
		}
	}
	return missing
}

// ErrMissingFields is returned by Save when required fields are blank.
type ErrMissingFields struct {
	Fields []Field
}

func (e *ErrMissingFields) Error() string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(keys, ", "))
}
