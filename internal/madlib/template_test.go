package madlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate("The {adjective} {noun} ran.\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"adjective", "noun"}, tpl.Blanks())

	out, err := tpl.Fill([]string{"quick", "fox"})
	require.NoError(t, err)
	assert.Equal(t, "The quick fox ran.", out)

	_, err = tpl.Fill([]string{"quick"})
	assert.ErrorIs(t, err, ErrWordCount)
}

func TestParseTemplateBlankAtEdges(t *testing.T) {
	tpl, err := ParseTemplate("{noun} and {noun}")
	require.NoError(t, err)
	out, err := tpl.Fill([]string{"salt", "pepper"})
	require.NoError(t, err)
	assert.Equal(t, "salt and pepper", out)
}

func TestParseTemplateMalformed(t *testing.T) {
	for _, s := range []string{
		"no blanks here",
		"an {unclosed blank",
		"a stray } brace {noun}",
		"{noun} then }",
		"empty {} blank",
		"nested {a {b}}",
	} {
		_, err := ParseTemplate(s)
		assert.ErrorIs(t, err, ErrMalformedTemplate, s)
	}
}

func TestArticle(t *testing.T) {
	cases := map[string]string{
		"noun":                 "a",
		"adjective":            "an",
		"Adverb":               "an",
		"plural noun":          "a",
		"verb (present tense)": "a",
		"exclamation":          "an",
		"":                     "a",
	}
	for in, want := range cases {
		assert.Equal(t, want, Article(in), "%q", in)
	}
}

func TestLoadEmbedded(t *testing.T) {
	tpl, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", Source())
	assert.Equal(t, []string{
		"noun",
		"plural noun",
		"verb (present tense)",
		"verb (present tense)",
		"part of body (plural)",
		"adjective",
		"plural noun",
		"adjective",
	}, tpl.Blanks())
}
