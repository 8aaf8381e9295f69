package literal

import "strings"

// Entry is one key/value pair of a [Dict].
type Entry struct {
	Key   Value
	Value Value
}

// Dict is an insertion-ordered Python dict.
type Dict struct {
	entries []Entry
	index   map[string]int
}

// NewDict returns an empty dict.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// Set adds key or, when an equal key is already present, replaces its value
// while keeping the original position.
func (d *Dict) Set(key, value Value) *Dict {
	if d.index == nil {
		d.index = make(map[string]int)
	}

	id := Repr(key)
	if i, ok := d.index[id]; ok {
		d.entries[i].Value = value
		return d
	}

	d.index[id] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Value: value})
	return d
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// Entries returns the entries in insertion order.
func (d *Dict) Entries() []Entry {
	if d == nil {
		return nil
	}

	return d.entries
}

func (d *Dict) writeRepr(b *strings.Builder) {
	b.WriteByte('{')
	for i, e := range d.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		e.Key.writeRepr(b)
		b.WriteString(": ")
		e.Value.writeRepr(b)
	}
	b.WriteByte('}')
}

// Block renders a "NAME = {...}" statement with one entry per line, nested
// dicts expanded and every entry followed by a comma. Non-dict values are
// rendered on a single line.
func Block(name string, v Value, indent string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" = ")
	writeBlock(&b, v, indent, 0)
	b.WriteByte('\n')
	return b.String()
}

func writeBlock(b *strings.Builder, v Value, indent string, depth int) {
	d, ok := v.(*Dict)
	if !ok || d.Len() == 0 {
		v.writeRepr(b)
		return
	}

	b.WriteString("{\n")
	inner := strings.Repeat(indent, depth+1)
	for _, e := range d.entries {
		b.WriteString(inner)
		e.Key.writeRepr(b)
		b.WriteString(": ")
		writeBlock(b, e.Value, indent, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteByte('}')
}
