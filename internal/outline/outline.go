// Package outline models the per-subject course descriptors and renders them
// as nested disclosure-widget navigation fragments.
package outline

import (
	"fmt"
	"strconv"

	"github.com/ohler55/ojg/oj"
)

// Subject is one course outline, decoded from a subject's JSON descriptor.
// Unit and group order is preserved from the descriptor.
type Subject struct {
	Units []Unit
}

// Unit is a numbered section of a subject.
type Unit struct {
	ID     string
	Groups []Group
}

// Group is a category of files within a unit (lecture notes, assignments, ...).
type Group struct {
	Type  string
	Files []File
}

// File is a single linked resource. LinkText is already resolved from the
// descriptor's linkText > linkTitle > title > filename precedence.
type File struct {
	Filename string
	LinkText string
	URL      string
}

// ParseSubject decodes a subject descriptor. Descriptors are hand-maintained,
// so missing keys default to empty values instead of failing the subject;
// only malformed JSON or a non-object root is an error.
func ParseSubject(data []byte) (*Subject, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("descriptor root is %T, want object", root)
	}

	subject := &Subject{}
	for _, u := range asSlice(doc["units"]) {
		raw, ok := u.(map[string]any)
		if !ok {
			continue
		}
		unit := Unit{ID: stringify(raw["unit"])}
		for _, g := range asSlice(raw["groups"]) {
			raw, ok := g.(map[string]any)
			if !ok {
				continue
			}
			group := Group{Type: asString(raw["type"])}
			for _, f := range asSlice(raw["files"]) {
				raw, ok := f.(map[string]any)
				if !ok {
					continue
				}
				name := asString(raw["filename"])
				group.Files = append(group.Files, File{
					Filename: name,
					LinkText: firstNonEmpty(
						asString(raw["linkText"]),
						asString(raw["linkTitle"]),
						asString(raw["title"]),
						name,
					),
					URL: asString(raw["url"]),
				})
			}
			unit.Groups = append(unit.Groups, group)
		}
		subject.Units = append(subject.Units, unit)
	}
	return subject, nil
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// stringify renders a unit id, which descriptors write as either a string or
// a bare number.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
