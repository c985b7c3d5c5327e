package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Headings(t *testing.T) {
	h1 := ParseLine("# Relatório")
	assert.Equal(t, KindHeading, h1.Kind)
	assert.Equal(t, 1, h1.Level)
	require.Len(t, h1.Segments, 1)
	assert.Equal(t, "Relatório", h1.Segments[0].Text)

	h2 := ParseLine("## Fundamentação")
	assert.Equal(t, KindHeading, h2.Kind)
	assert.Equal(t, 2, h2.Level)

	h3 := ParseLine("### Detalhe")
	assert.Equal(t, KindHeading, h3.Kind)
	assert.Equal(t, 3, h3.Level)
}

func TestParseLine_HeadingRequiresRawPrefix(t *testing.T) {
	// indented hashes are not headings
	line := ParseLine("  ## Indentado")
	assert.Equal(t, KindParagraph, line.Kind)
}

func TestParseLine_Bullets(t *testing.T) {
	dash := ParseLine("- Item um")
	assert.Equal(t, KindBulletItem, dash.Kind)
	require.Len(t, dash.Segments, 1)
	assert.Equal(t, "Item um", dash.Segments[0].Text)

	star := ParseLine("* Item dois")
	assert.Equal(t, KindBulletItem, star.Kind)

	indented := ParseLine("   - Item três")
	assert.Equal(t, KindBulletItem, indented.Kind)
}

func TestParseLine_NumberedItem(t *testing.T) {
	line := ParseLine("1. Primeiro passo")
	assert.Equal(t, KindNumberedItem, line.Kind)

	multi := ParseLine("12. Décimo segundo")
	assert.Equal(t, KindNumberedItem, multi.Kind)

	noDot := ParseLine("12 Décimo segundo")
	assert.Equal(t, KindParagraph, noDot.Kind)
}

func TestParseLine_Blank(t *testing.T) {
	assert.Equal(t, KindBlankLine, ParseLine("").Kind)
	assert.Equal(t, KindBlankLine, ParseLine("   \t  ").Kind)
}

func TestParseLine_BoldSegments(t *testing.T) {
	line := ParseLine("Texto com **negrito** no meio")

	require.Len(t, line.Segments, 3)
	assert.False(t, line.Segments[0].Bold)
	assert.Equal(t, "Texto com ", line.Segments[0].Text)
	assert.True(t, line.Segments[1].Bold)
	assert.Equal(t, "negrito", line.Segments[1].Text)
	assert.False(t, line.Segments[2].Bold)
}

func TestParseLine_BoldAtBoundaries(t *testing.T) {
	line := ParseLine("**A**B**C**")

	require.Len(t, line.Segments, 3)
	assert.True(t, line.Segments[0].Bold)
	assert.Equal(t, "A", line.Segments[0].Text)
	assert.False(t, line.Segments[1].Bold)
	assert.Equal(t, "B", line.Segments[1].Text)
	assert.True(t, line.Segments[2].Bold)
	assert.Equal(t, "C", line.Segments[2].Text)
}

func TestParseLine_UnmatchedBoldMarker(t *testing.T) {
	// must not panic or error, marker just opens a bold run
	line := ParseLine("aberto **sem fechar")

	require.Len(t, line.Segments, 2)
	assert.False(t, line.Segments[0].Bold)
	assert.True(t, line.Segments[1].Bold)
}

func TestRenderDocument(t *testing.T) {
	text := "## Título\n- **Item** um\n- Item dois\n\nTexto final."

	lines := RenderDocument(text)
	require.Len(t, lines, 5)

	assert.Equal(t, KindHeading, lines[0].Kind)
	assert.Equal(t, 2, lines[0].Level)
	assert.Equal(t, KindBulletItem, lines[1].Kind)
	assert.Equal(t, KindBulletItem, lines[2].Kind)
	assert.Equal(t, KindBlankLine, lines[3].Kind)
	assert.Equal(t, KindParagraph, lines[4].Kind)

	// bold inside the first bullet
	require.Len(t, lines[1].Segments, 2)
	assert.True(t, lines[1].Segments[0].Bold)
	assert.Equal(t, "Item", lines[1].Segments[0].Text)
}

func TestRenderDocument_Empty(t *testing.T) {
	assert.Nil(t, RenderDocument(""))
}

func TestRenderDocument_Idempotent(t *testing.T) {
	text := "# A\n\n- b\n1. c\nparagrafo"

	first := RenderDocument(text)
	second := RenderDocument(text)

	assert.Equal(t, first, second)
}
