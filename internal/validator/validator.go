// Package validator checks that a documentation directory only contains
// class documentation files the reader can decode.
package validator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/docjson/internal/javadoc"
)

// Result is the outcome of checking one documentation file.
type Result struct {
	File       string
	Class      javadoc.ClassName
	Fields     int
	Methods    int
	Parameters int
	Err        error
}

// Report collects the results of a directory check.
type Report struct {
	Results []Result
}

// Failed returns the results of files that could not be decoded.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// ValidateFile decodes a single "<class>.json" file.
func ValidateFile(path string) Result {
	res := Result{
		File:  path,
		Class: javadoc.ClassName(strings.TrimSuffix(filepath.Base(path), ".json")),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read file: %w", err)
		return res
	}

	doc, err := javadoc.ParseClassDoc(data)
	if err != nil {
		res.Err = err
		return res
	}

	res.Fields = len(doc.FieldComments)
	res.Methods = len(doc.MethodComments)
	for _, params := range doc.MethodParameterComments {
		res.Parameters += len(params)
	}
	return res
}

// ValidateDir checks every *.json file directly inside dir and writes one
// line per file to w. It returns an error if the directory cannot be read or
// any file is malformed.
func ValidateDir(dir string, w io.Writer) (Report, error) {
	var report Report

	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		res := ValidateFile(filepath.Join(dir, entry.Name()))
		report.Results = append(report.Results, res)

		if res.Err != nil {
			fmt.Fprintf(w, "✗ %s: %v\n", res.Class, res.Err)
			continue
		}
		fmt.Fprintf(w, "✓ %s (%d fields, %d methods, %d parameters)\n", res.Class, res.Fields, res.Methods, res.Parameters)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%d of %d documentation files are malformed", len(failed), len(report.Results))
	}

	fmt.Fprintf(w, "\n✅ %d documentation files are valid\n", len(report.Results))
	return report, nil
}
