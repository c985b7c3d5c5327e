// Package prompts holds the document-type catalog: which kinds of
// procurement documents can be generated, the instruction template for each,
// and the composition of the final prompt from the process facts collected by
// the form.
package prompts

import (
	"fmt"
	"strings"
)

// enumerates the supported document kinds
type DocumentType string

const (
	DocTypeETP           DocumentType = "etp"
	DocTypeMapaRisco     DocumentType = "mapa_risco"
	DocTypeTR            DocumentType = "tr"
	DocTypePesquisaPreco DocumentType = "pesquisa_preco"
	DocTypeViabilidade   DocumentType = "viabilidade"
	DocTypeImpugnacao    DocumentType = "impugnacao"
	DocTypeAdesaoAta     DocumentType = "adesao_ata"
)

// marker inside the impugnacao template replaced by the form's free text
const impugnacaoPlaceholder = "{{TEXTO_IMPUGNACAO}}"

// process facts collected by the form. ImpugnacaoText is only consumed by
// the impugnacao document type.
type FormData struct {
	OrganName         string `json:"organ_name"`
	City              string `json:"city"`
	Modality          string `json:"modality"`
	JudgmentCriteria  string `json:"judgment_criteria"`
	ObjectDescription string `json:"object_description"`
	EstimatedValue    string `json:"estimated_value"`
	Justification     string `json:"justification"`
	AdditionalInfo    string `json:"additional_info"`
	ImpugnacaoText    string `json:"impugnacao_text,omitempty"`
}

var labels = map[DocumentType]string{
	DocTypeETP:           "ETP (Estudo Técnico Preliminar)",
	DocTypeMapaRisco:     "Mapa de Risco",
	DocTypeTR:            "Termo de Referência",
	DocTypePesquisaPreco: "Modelo de Pesquisa de Preço",
	DocTypeViabilidade:   "Estudo de Viabilidade",
	DocTypeImpugnacao:    "Resposta a Impugnação",
	DocTypeAdesaoAta:     "Adesão a Ata de Registro de Preços",
}

// reports whether the tag is a known document type
func (t DocumentType) Valid() bool {
	_, ok := labels[t]
	return ok
}

// returns the human-readable title used as the default document title
func (t DocumentType) Label() string {
	if label, ok := labels[t]; ok {
		return label
	}

	return string(t)
}

// reports whether the template relies on grounding via the web-search tool
func (t DocumentType) NeedsSearch() bool {
	return t == DocTypePesquisaPreco || t == DocTypeAdesaoAta
}

// lists all document types in presentation order
func AllTypes() []DocumentType {
	return []DocumentType{
		DocTypeETP,
		DocTypeMapaRisco,
		DocTypeTR,
		DocTypePesquisaPreco,
		DocTypeViabilidade,
		DocTypeImpugnacao,
		DocTypeAdesaoAta,
	}
}

// assembles the user prompt: process facts, the document-type task template
// and the markdown formatting directive
func Compose(docType DocumentType, form FormData) string {
	template := templates[docType]

	if docType == DocTypeImpugnacao {
		text := strings.TrimSpace(form.ImpugnacaoText)
		if text == "" {
			text = "(não informado)"
		}

		template = strings.ReplaceAll(template, impugnacaoPlaceholder, text)
	}

	var b strings.Builder

	b.WriteString("INFORMAÇÕES DO PROCESSO:\n")
	fmt.Fprintf(&b, "Órgão Público: %s\n", form.OrganName)
	fmt.Fprintf(&b, "Cidade/Estado: %s\n", form.City)
	fmt.Fprintf(&b, "Modalidade da Licitação: %s\n", form.Modality)
	fmt.Fprintf(&b, "Critério de Julgamento: %s\n", form.JudgmentCriteria)
	fmt.Fprintf(&b, "Objeto da Licitação: %s\n", form.ObjectDescription)
	fmt.Fprintf(&b, "Justificativa: %s\n", form.Justification)
	fmt.Fprintf(&b, "Valor Estimado: %s\n", form.EstimatedValue)
	fmt.Fprintf(&b, "Informações Adicionais: %s\n", form.AdditionalInfo)
	b.WriteString("\nTAREFA:\n")
	b.WriteString(template)
	b.WriteString("\n\nGere o conteúdo em formato Markdown bem estruturado. Use títulos (##), listas e negrito para destacar seções importantes.")

	return b.String()
}
