package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_EmbedsTermAndLocale(t *testing.T) {
	g := NewGenerator("Scottish")

	out, err := g.Generate("leverage")
	require.NoError(t, err)

	assert.Contains(t, out, `Analyze the following word or phrase: "leverage".`)
	assert.Contains(t, out, "The corresponding Scottish school year.")
	assert.Contains(t, out, `return "Not Verifiable"`)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestGenerator_DefaultLocale(t *testing.T) {
	g := NewGenerator("")
	assert.Equal(t, "UK", g.Locale())

	out, err := g.Generate("bank")
	require.NoError(t, err)
	assert.Contains(t, out, "The corresponding UK school year.")
}

func TestGenerator_SetTemplate(t *testing.T) {
	g := NewGenerator("UK")

	require.NoError(t, g.SetTemplate("term={{ .Term }} locale={{ .Locale }}"))
	out, err := g.Generate("equal")
	require.NoError(t, err)
	assert.Equal(t, "term=equal locale=UK", out)

	err = g.SetTemplate("{{ .Term ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template")
}
