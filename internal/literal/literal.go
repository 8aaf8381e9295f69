// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package literal builds typed Python literal values and renders them in
// Python source syntax.
//
// Values are constructed from the variants below (None, Bool, Int, Float,
// Str, List, Tuple, Dict) and printed either on a single line, following
// the conventions of Python's repr(), or as an indented block for the
// larger fixed structures of the settings module:
//
//	v := literal.NewDict().
//	    Set(literal.Str("sub"), literal.Str("uid"))
//	literal.Assign("OAUTH_ATTRIBUTE_MAP", v) // OAUTH_ATTRIBUTE_MAP = {'sub': 'uid'}
package literal

import (
	"math"
	"strconv"
	"strings"
)

// Value is a Python literal.
type Value interface {
	// writeRepr appends the single-line representation of the value.
	writeRepr(b *strings.Builder)
}

// None is Python's None.
type None struct{}

// Bool is True or False.
type Bool bool

// Int is an integer literal kept as its decimal digits (optionally signed),
// so arbitrarily large values are preserved.
type Int string

// Float is a floating point literal.
type Float float64

// Str is a string literal quoted the way repr() quotes it: single quotes,
// unless the text contains a single quote and no double quote.
type Str string

// DoubleQuoted is a string literal that is always double quoted.
type DoubleQuoted string

// List is a Python list.
type List []Value

// Tuple is a Python tuple. A one-element tuple keeps its trailing comma.
type Tuple []Value

// IntOf returns the Int literal for n.
func IntOf(n int64) Int {
	return Int(strconv.FormatInt(n, 10))
}

// Strs converts plain strings into a slice of Str values.
func Strs(ss []string) []Value {
	out := make([]Value, 0, len(ss))
	for _, s := range ss {
		out = append(out, Str(s))
	}

	return out
}

// Repr renders v on a single line.
func Repr(v Value) string {
	var b strings.Builder
	v.writeRepr(&b)
	return b.String()
}

// Assign renders a top-level "NAME = <repr>" statement.
func Assign(name string, v Value) string {
	return name + " = " + Repr(v)
}

func (None) writeRepr(b *strings.Builder) {
	b.WriteString("None")
}

func (v Bool) writeRepr(b *strings.Builder) {
	if v {
		b.WriteString("True")
		return
	}
	b.WriteString("False")
}

func (v Int) writeRepr(b *strings.Builder) {
	b.WriteString(string(v))
}

// writeRepr follows repr(float): shortest round-trip digits, exponent form
// below 1e-4 and from 1e16 on, and a ".0" suffix on integral values.
func (v Float) writeRepr(b *strings.Builder) {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		b.WriteString("inf")
		return
	case math.IsInf(f, -1):
		b.WriteString("-inf")
		return
	case math.IsNaN(f):
		b.WriteString("nan")
		return
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		b.WriteString(strconv.FormatFloat(f, 'e', -1, 64))
		return
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	b.WriteString(s)
}

func (v Str) writeRepr(b *strings.Builder) {
	s := string(v)
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	writeQuoted(b, s, quote)
}

func (v DoubleQuoted) writeRepr(b *strings.Builder) {
	writeQuoted(b, string(v), '"')
}

func (v List) writeRepr(b *strings.Builder) {
	b.WriteByte('[')
	writeItems(b, v)
	b.WriteByte(']')
}

func (v Tuple) writeRepr(b *strings.Builder) {
	b.WriteByte('(')
	writeItems(b, v)
	if len(v) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
}

func writeItems(b *strings.Builder, items []Value) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		item.writeRepr(b)
	}
}
