// Package javadoc resolves documentation comments for classes, fields,
// methods and method parameters from per-class JSON files produced by an
// upstream extraction step.
package javadoc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ClassName is the canonical, fully-qualified name of a documented class,
// e.g. "com.example.Foo".
type ClassName string

// lookupSuffix is appended to a ClassName to build the file name and cache key.
const lookupSuffix = ".json"

// LookupKey returns the file name (relative to the documentation directory)
// that holds the documentation for the class. It doubles as the cache key.
func LookupKey(class ClassName) string {
	return string(class) + lookupSuffix
}

// ClassDoc holds the extracted documentation of a single class.
type ClassDoc struct {
	FieldComments           map[string]string            `json:"fieldComments"`
	MethodComments          map[string]string            `json:"methodComments"`
	MethodParameterComments map[string]map[string]string `json:"methodParameterComments"`
}

// FieldComment returns the comment of the named field or "" if there is none.
func FieldComment(doc *ClassDoc, field string) string {
	if doc == nil {
		return ""
	}
	return doc.FieldComments[field]
}

// MethodComment returns the comment of the method identified by methodKey.
func MethodComment(doc *ClassDoc, methodKey string) string {
	if doc == nil {
		return ""
	}
	return doc.MethodComments[methodKey]
}

// MethodParameterComment returns the comment of a parameter of the method
// identified by methodKey.
func MethodParameterComment(doc *ClassDoc, methodKey, param string) string {
	if doc == nil {
		return ""
	}
	// indexing a nil inner map is fine
	return doc.MethodParameterComments[methodKey][param]
}

// ParseClassDoc decodes a documentation file. Absent or null maps decode to
// empty lookups; unknown top-level keys are ignored. Anything that is not a
// single JSON object of the expected shape is an error.
func ParseClassDoc(data []byte) (*ClassDoc, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if data[0] != '{' {
		return nil, fmt.Errorf("document is not a JSON object")
	}

	var doc ClassDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode class documentation: %w", err)
	}
	return &doc, nil
}
