package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKey(t *testing.T) {
	assert.Equal(t, "com.example.Foo.json", LookupKey("com.example.Foo"))
	assert.Equal(t, "com.example.Outer.Inner.json", LookupKey("com.example.Outer.Inner"))
}

func TestParseClassDoc(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantField string
	}{
		{name: "all maps", input: `{"fieldComments":{"f":"c"},"methodComments":{},"methodParameterComments":{}}`, wantField: "c"},
		{name: "empty object", input: `{}`},
		{name: "leading whitespace", input: "\n  {\"fieldComments\":{\"f\":\"c\"}}\n", wantField: "c"},
		{name: "unknown keys", input: `{"className":"Foo","fieldComments":{"f":"c"}}`, wantField: "c"},
		{name: "empty", input: ``, wantErr: true},
		{name: "whitespace only", input: "  \n", wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "string", input: `"fieldComments"`, wantErr: true},
		{name: "invalid", input: `{fieldComments: {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseClassDoc([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, FieldComment(doc, "f"))
		})
	}
}

func TestLookupFunctions(t *testing.T) {
	doc := &ClassDoc{
		FieldComments:  map[string]string{"name": "The name"},
		MethodComments: map[string]string{"get()": "Gets."},
		MethodParameterComments: map[string]map[string]string{
			"set(int)": {"value": "New value."},
		},
	}

	assert.Equal(t, "The name", FieldComment(doc, "name"))
	assert.Equal(t, "", FieldComment(doc, "missing"))
	assert.Equal(t, "Gets.", MethodComment(doc, "get()"))
	assert.Equal(t, "", MethodComment(doc, "set(int)"))
	assert.Equal(t, "New value.", MethodParameterComment(doc, "set(int)", "value"))
	assert.Equal(t, "", MethodParameterComment(doc, "get()", "value"))
}

func TestLookupFunctions_EmptyRecords(t *testing.T) {
	for _, doc := range []*ClassDoc{nil, {}} {
		assert.Equal(t, "", FieldComment(doc, "name"))
		assert.Equal(t, "", MethodComment(doc, "get()"))
		assert.Equal(t, "", MethodParameterComment(doc, "get()", "value"))
	}
}
