// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package emitter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/seatable-init/internal/attrmap"
	"github.com/MKhiriev/seatable-init/internal/infer"
	"github.com/MKhiriev/seatable-init/internal/literal"
	"github.com/MKhiriev/seatable-init/internal/namespace"
)

// Cache backend selectors accepted in DTABLE_WEB__CACHE_BACKEND.
const (
	CacheBackendLocmem = "locmem"
	CacheBackendRedis  = "redis"
)

const (
	defaultCacheHost = "redis"
	defaultCachePort = "6379"

	blockIndent = "    "
)

// Database holds the connection parameters of the DATABASES block.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Attachment is an optional document appended after the typed settings.
// A nil Content means the document does not exist.
type Attachment struct {
	Name    string
	Content []byte
}

// Present reports whether the document exists.
func (a Attachment) Present() bool {
	return a.Content != nil
}

// SettingsInput is everything the settings module is rendered from.
type SettingsInput struct {
	// Variables are the resolved DTABLE_WEB__ variables.
	Variables map[string]string
	Database  Database
	OAuthMap  attrmap.Map
	SAMLMap   attrmap.Map
	// Roles is a JSON document embedded as ENABLED_ROLE_PERMISSIONS.
	Roles Attachment
	// Overrides is Python source appended verbatim.
	Overrides Attachment
}

// Settings renders the Python settings module of the web application.
//
// Layout, in order: DATABASES, CACHES, OAUTH_ATTRIBUTE_MAP and
// SAML_ATTRIBUTE_MAP when non-empty, one line per remaining variable, the
// role definitions and the overrides.
func Settings(in SettingsInput) ([]byte, error) {
	var b strings.Builder

	b.WriteString(literal.Block("DATABASES", databasesLiteral(in.Database), blockIndent))
	b.WriteString("\n")

	caches, err := cachesLiteral(in.Variables)
	if err != nil {
		return nil, err
	}
	b.WriteString(literal.Block("CACHES", caches, blockIndent))
	b.WriteString("\n")

	if in.OAuthMap.Len() > 0 {
		b.WriteString(literal.Assign("OAUTH_ATTRIBUTE_MAP", in.OAuthMap.Literal()) + "\n")
	}
	if in.SAMLMap.Len() > 0 {
		b.WriteString(literal.Assign("SAML_ATTRIBUTE_MAP", in.SAMLMap.Literal()) + "\n")
	}

	lines, err := settingLines(in.Variables)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	if in.Roles.Present() {
		roles, err := ParseDocument(in.Roles.Name, in.Roles.Content)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "\n# Role definitions imported from %s:\n", in.Roles.Name)
		b.WriteString(literal.Assign("ENABLED_ROLE_PERMISSIONS", roles) + "\n")
	}

	if in.Overrides.Present() {
		fmt.Fprintf(&b, "\n# Overrides imported from %s:\n", in.Overrides.Name)
		b.Write(in.Overrides.Content)
	}

	return []byte(b.String()), nil
}

// settingLines classifies every variable once and renders the ones that
// become plain assignments, in sorted key order.
func settingLines(vars map[string]string) ([]string, error) {
	lines := make([]string, 0, len(vars))
	for _, key := range namespace.SortedKeys(vars) {
		kind := Classify(key)

		switch kind {
		case FieldExcluded, FieldAttributeMap:
			continue
		case FieldUnsupported:
			return nil, fmt.Errorf("%w: %q is not implemented", ErrUnsupportedVariable, key)
		}

		decoded, err := namespace.Decode(key, namespace.ArityField)
		if err != nil {
			return nil, err
		}

		lines = append(lines, literal.Assign(decoded.Field, fieldLiteral(kind, vars[key])))
	}

	return lines, nil
}

func fieldLiteral(kind FieldKind, raw string) literal.Value {
	switch kind {
	case FieldExtensionList:
		return literal.Tuple(literal.Strs(strings.Split(raw, ",")))
	case FieldScopeList:
		return literal.List(literal.Strs(strings.Split(raw, ",")))
	default:
		return inferredLiteral(raw)
	}
}

func inferredLiteral(raw string) literal.Value {
	v := infer.Infer(raw)
	switch v.Kind {
	case infer.Bool:
		return literal.Bool(v.Bool())
	case infer.Integer:
		return literal.Int(v.Digits())
	default:
		return literal.DoubleQuoted(v.Raw)
	}
}

func databasesLiteral(db Database) literal.Value {
	options := literal.NewDict().
		Set(literal.Str("charset"), literal.Str("utf8mb4"))

	def := literal.NewDict().
		Set(literal.Str("ENGINE"), literal.Str("django.db.backends.mysql")).
		Set(literal.Str("HOST"), literal.Str(db.Host)).
		Set(literal.Str("PORT"), literal.Str(db.Port)).
		Set(literal.Str("USER"), literal.Str(db.User)).
		Set(literal.Str("PASSWORD"), literal.Str(db.Password)).
		Set(literal.Str("NAME"), literal.Str(db.Name)).
		Set(literal.Str("OPTIONS"), options)

	return literal.NewDict().Set(literal.Str("default"), def)
}

// cachesLiteral selects the backend of the "default" cache. The "locmem"
// alias is always present because COMPRESS_CACHE_BACKEND refers to it.
func cachesLiteral(vars map[string]string) (literal.Value, error) {
	locmem := literal.NewDict().
		Set(literal.Str("BACKEND"), literal.Str("django.core.cache.backends.locmem.LocMemCache"))

	var def literal.Value
	switch backend := valueOr(vars, keyCacheBackend, CacheBackendLocmem); strings.ToLower(backend) {
	case CacheBackendLocmem:
		def = locmem
	case CacheBackendRedis:
		host := valueOr(vars, keyCacheHost, defaultCacheHost)
		port := valueOr(vars, keyCachePort, defaultCachePort)
		def = literal.NewDict().
			Set(literal.Str("BACKEND"), literal.Str("django.core.cache.backends.redis.RedisCache")).
			Set(literal.Str("LOCATION"), literal.Str("redis://"+host+":"+port))
	default:
		return nil, fmt.Errorf("%w: %q selects unknown cache backend %q", ErrUnsupportedVariable, keyCacheBackend, backend)
	}

	return literal.NewDict().
		Set(literal.Str("default"), def).
		Set(literal.Str("locmem"), locmem), nil
}

func valueOr(vars map[string]string, key, fallback string) string {
	if v, ok := vars[key]; ok && v != "" {
		return v
	}

	return fallback
}
