package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentType_Valid(t *testing.T) {
	for _, docType := range AllTypes() {
		assert.True(t, docType.Valid(), string(docType))
	}

	assert.False(t, DocumentType("oficio").Valid())
	assert.False(t, DocumentType("").Valid())
}

func TestDocumentType_Labels(t *testing.T) {
	assert.Equal(t, "ETP (Estudo Técnico Preliminar)", DocTypeETP.Label())
	assert.Equal(t, "Termo de Referência", DocTypeTR.Label())
	assert.Equal(t, "Resposta a Impugnação", DocTypeImpugnacao.Label())
}

func TestDocumentType_NeedsSearch(t *testing.T) {
	assert.True(t, DocTypePesquisaPreco.NeedsSearch())
	assert.True(t, DocTypeAdesaoAta.NeedsSearch())
	assert.False(t, DocTypeETP.NeedsSearch())
	assert.False(t, DocTypeImpugnacao.NeedsSearch())
}

func TestCompose_IncludesProcessFacts(t *testing.T) {
	form := FormData{
		OrganName:         "Prefeitura de Teresina",
		City:              "Teresina/PI",
		Modality:          "Pregão Eletrônico",
		JudgmentCriteria:  "Menor Preço",
		ObjectDescription: "Contratação de serviços de limpeza",
		EstimatedValue:    "R$ 500.000,00",
		Justification:     "Continuidade do serviço",
		AdditionalInfo:    "Vigência de 12 meses",
	}

	prompt := Compose(DocTypeETP, form)

	assert.Contains(t, prompt, "INFORMAÇÕES DO PROCESSO:")
	assert.Contains(t, prompt, "Órgão Público: Prefeitura de Teresina")
	assert.Contains(t, prompt, "Objeto da Licitação: Contratação de serviços de limpeza")
	assert.Contains(t, prompt, "Valor Estimado: R$ 500.000,00")
	assert.Contains(t, prompt, "TAREFA:")
	assert.Contains(t, prompt, "ESTUDO TÉCNICO PRELIMINAR")
	assert.Contains(t, prompt, "formato Markdown")
}

func TestCompose_ImpugnacaoEmbedsText(t *testing.T) {
	form := FormData{
		ObjectDescription: "Edital 01/2026",
		ImpugnacaoText:    "A exigência do item 9.2 restringe a competição.",
	}

	prompt := Compose(DocTypeImpugnacao, form)

	assert.Contains(t, prompt, "A exigência do item 9.2 restringe a competição.")
	assert.NotContains(t, prompt, impugnacaoPlaceholder)
}

func TestCompose_ImpugnacaoWithoutText(t *testing.T) {
	prompt := Compose(DocTypeImpugnacao, FormData{ObjectDescription: "Edital"})

	assert.NotContains(t, prompt, impugnacaoPlaceholder)
	assert.Contains(t, prompt, "(não informado)")
}

func TestTemplates_CoverAllTypes(t *testing.T) {
	for _, docType := range AllTypes() {
		template, ok := templates[docType]
		require.True(t, ok, string(docType))
		assert.NotEmpty(t, strings.TrimSpace(template))
	}

	assert.Contains(t, templates[DocTypeImpugnacao], impugnacaoPlaceholder)
}

func TestSystemInstruction_Persona(t *testing.T) {
	assert.Contains(t, SystemInstruction, "LicitGov AI")
	assert.Contains(t, SystemInstruction, "14.133/2021")
}
