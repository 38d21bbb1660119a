// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"gopkg.microglot.org/parsec.go/internal/kvconf"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatYAML outputFormat = "yaml"
	formatJSON outputFormat = "json"
)

func parseFormat(s string) (outputFormat, error) {
	format := outputFormat(strings.ToLower(s))
	switch format {
	case formatText, formatYAML, formatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: text, yaml, json)", s)
	}
}

// writeDocuments renders documents to w. The text format prints one
// "uri: section.key = value" line per property.
func writeDocuments(w io.Writer, format outputFormat, docs []*kvconf.Document) error {
	switch format {
	case formatYAML:
		return yaml.NewEncoder(w).Encode(docs)
	case formatJSON:
		return yaml.NewEncoder(w, yaml.JSON()).Encode(docs)
	}
	for _, doc := range docs {
		for _, section := range doc.Sections {
			for _, p := range section.Entries {
				key := p.Key
				if section.Name != "" {
					key = section.Name + "." + key
				}
				if _, err := fmt.Fprintf(w, "%s: %s = %q\n", doc.URI, key, p.Value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
