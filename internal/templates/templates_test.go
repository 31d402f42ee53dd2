package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testData = Data{Name: "data-analyzer", Title: "Data Analyzer"}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		APIReference,
		ExampleAsset,
		ExampleScript,
		SkillDoc,
	}, names)
}

func TestRenderSkillDoc(t *testing.T) {
	out, err := Render(SkillDoc, testData)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "---\n"), "frontmatter must open the document")
	assert.Contains(t, content, "name: data-analyzer")
	assert.Contains(t, content, "description: [TODO:")
	assert.Contains(t, content, "# Data Analyzer")
	// Fixed closing section describing the resource directories.
	assert.Contains(t, content, "### scripts/")
	assert.Contains(t, content, "### references/")
	assert.Contains(t, content, "### assets/")
	// No unexpanded placeholders left behind.
	assert.NotContains(t, content, "{{")
}

func TestRenderExampleScript(t *testing.T) {
	out, err := Render(ExampleScript, testData)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "#!/bin/sh\n"), "script must carry a shebang")
	assert.Contains(t, content, `echo "This is an example script for data-analyzer"`)
	assert.NotContains(t, content, "{{")
}

func TestRenderAPIReference(t *testing.T) {
	out, err := Render(APIReference, testData)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Reference Documentation for Data Analyzer")
	assert.NotContains(t, content, "{{")
}

func TestRawExampleAsset(t *testing.T) {
	out, err := Raw(ExampleAsset)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Example Asset File")
	// The asset placeholder is verbatim data with no substitution fields.
	assert.NotContains(t, content, "{{")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nope.tmpl", testData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestRawUnknownFile(t *testing.T) {
	_, err := Raw("nope.txt")
	require.Error(t, err)
}
