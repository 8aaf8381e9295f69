// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package namespace resolves the flat PREFIX__SECTION__FIELD variable
// namespace that drives configuration generation.
//
// It owns the built-in default table, the per-prefix merge of defaults and
// environment (environment wins), the check for globally required
// variables, and the key grammar decoder.
package namespace

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment is a snapshot of the process environment as a flat key/value
// mapping. It is taken once per run so that every target sees the same
// values.
type Environment map[string]string

// FromOS snapshots os.Environ().
func FromOS() Environment {
	return Environment(env.ToMap(os.Environ()))
}

// Lookup returns the value of key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Get returns the value of key, or fallback when the key is not set.
func (e Environment) Get(key, fallback string) string {
	if v, ok := e[key]; ok {
		return v
	}

	return fallback
}

// Bool reports whether key is set to "true" (case-insensitive). Unset keys
// yield fallback.
func (e Environment) Bool(key string, fallback bool) bool {
	v, ok := e[key]
	if !ok {
		return fallback
	}

	return strings.EqualFold(v, "true")
}

// WithPrefix returns the subset of variables whose key starts with prefix.
func (e Environment) WithPrefix(prefix string) map[string]string {
	return filterPrefix(e, prefix)
}

// RequiredVariables must be present before any target is generated.
var RequiredVariables = []string{
	"SEATABLE_SERVER_PROTOCOL",
	"SEATABLE_SERVER_HOSTNAME",
	"DB_HOST",
	"DB_ROOT_PASSWD",
	"DTABLE_WEB__SECRET_KEY",
	"DTABLE_WEB__DTABLE_PRIVATE_KEY",
}

// Require checks that every key is present in e. The first missing key is
// reported wrapped in [ErrMissingRequiredVariable]. An empty value counts as
// present.
func Require(e Environment, keys ...string) error {
	for _, key := range keys {
		if _, ok := e[key]; !ok {
			return fmt.Errorf("%w: %q must be provided", ErrMissingRequiredVariable, key)
		}
	}

	return nil
}

// SortedKeys returns the keys of vars in lexicographic order, the emission
// order used by every per-key target.
func SortedKeys(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func filterPrefix(vars map[string]string, prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range vars {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}

	return out
}
