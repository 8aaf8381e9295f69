// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package emitter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/seatable-init/internal/namespace"
	"github.com/go-ini/ini"
)

// INI renders PREFIX__SECTION__FIELD variables as an INI document. Section
// and key names keep their case and values are written raw: no quoting, no
// escaping. Line breaks inside a value become continuation lines indented
// by a tab. Sections appear in the order their first key sorts in, except
// DEFAULT, which comes first when present.
func INI(vars map[string]string) ([]byte, error) {
	file := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})

	for _, key := range namespace.SortedKeys(vars) {
		decoded, err := namespace.Decode(key, namespace.AritySection)
		if err != nil {
			return nil, err
		}

		section, err := file.NewSection(decoded.Section)
		if err != nil {
			return nil, fmt.Errorf("error adding section %q for %q: %w", decoded.Section, key, err)
		}

		if _, err := section.NewKey(decoded.Field, vars[key]); err != nil {
			return nil, fmt.Errorf("error adding key %q: %w", key, err)
		}
	}

	return renderINI(file), nil
}

// renderINI writes every non-empty section as "[name]" followed by
// "key = value" lines and a blank line. go-ini's own writer is not used
// because it quotes values holding backticks, quotes or surrounding
// spaces, and omits the DEFAULT header; the consumers of these files
// would read those quotes as part of the value.
func renderINI(file *ini.File) []byte {
	var b strings.Builder
	for _, section := range file.Sections() {
		keys := section.Keys()
		if len(keys) == 0 {
			continue
		}

		b.WriteString("[" + section.Name() + "]\n")
		for _, key := range keys {
			b.WriteString(key.Name() + " = " + strings.ReplaceAll(key.Value(), "\n", "\n\t") + "\n")
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}
