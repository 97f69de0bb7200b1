package validator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "com.example.Foo.json", `{
		"fieldComments": {"id": "Id.", "name": "Name."},
		"methodComments": {"run()": "Runs."},
		"methodParameterComments": {"set(int,int)": {"a": "A.", "b": "B."}}
	}`)

	res := ValidateFile(path)

	require.NoError(t, res.Err)
	assert.Equal(t, "com.example.Foo", string(res.Class))
	assert.Equal(t, 2, res.Fields)
	assert.Equal(t, 1, res.Methods)
	assert.Equal(t, 2, res.Parameters)
}

func TestValidateFile_Errors(t *testing.T) {
	dir := t.TempDir()

	res := ValidateFile(filepath.Join(dir, "com.example.Missing.json"))
	assert.Error(t, res.Err)

	res = ValidateFile(writeFile(t, dir, "com.example.Broken.json", `{"fieldComments":[]}`))
	assert.Error(t, res.Err)
	assert.Equal(t, "com.example.Broken", string(res.Class))
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "com.example.A.json", `{"fieldComments":{"a":"A."}}`)
	writeFile(t, dir, "com.example.B.json", `{}`)
	writeFile(t, dir, "README.md", "not documentation")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	var out bytes.Buffer
	report, err := ValidateDir(dir, &out)

	require.NoError(t, err)
	assert.Len(t, report.Results, 2)
	assert.Empty(t, report.Failed())
	assert.Contains(t, out.String(), "✓ com.example.A (1 fields, 0 methods, 0 parameters)")
	assert.Contains(t, out.String(), "2 documentation files are valid")
}

func TestValidateDir_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "com.example.A.json", `{"fieldComments":{"a":"A."}}`)
	writeFile(t, dir, "com.example.Broken.json", `{"fieldComments":`)

	var out bytes.Buffer
	report, err := ValidateDir(dir, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "com.example.Broken", string(report.Failed()[0].Class))
	assert.Contains(t, out.String(), "✗ com.example.Broken")
}

func TestValidateDir_MissingDirectory(t *testing.T) {
	_, err := ValidateDir(filepath.Join(t.TempDir(), "missing"), &bytes.Buffer{})
	assert.Error(t, err)
}
