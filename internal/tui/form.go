package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/licitgov/server/internal/prompts"
)

func NewPicker() *PickerModel {
	return &PickerModel{
		types: prompts.AllTypes(),
	}
}

func (p *PickerModel) Update(msg tea.Msg) (selected prompts.DocumentType, ok bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return "", false
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.types)-1 {
			p.cursor++
		}
	case "enter":
		return p.types[p.cursor], true
	}

	return "", false
}

func (p *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LicitGov"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Selecione o tipo de documento"))
	b.WriteString("\n")

	for i, t := range p.types {
		line := t.Label()

		if i == p.cursor {
			b.WriteString(menuItemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}

		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ navegar · enter selecionar · ctrl+c sair"))

	return b.String()
}

func NewForm(docType prompts.DocumentType) *FormModel {
	fields := []formField{
		{label: "Órgão Público", required: true},
		{label: "Cidade/Estado"},
		{label: "Modalidade da Licitação"},
		{label: "Critério de Julgamento"},
		{label: "Objeto da Licitação", required: true},
		{label: "Valor Estimado"},
		{label: "Justificativa"},
		{label: "Informações Adicionais"},
	}

	if docType == prompts.DocTypeImpugnacao {
		fields = append(fields, formField{label: "Texto da Impugnação", required: true})
	}

	input := textinput.New()
	input.Focus()
	input.CharLimit = 2000
	input.Width = 60

	return &FormModel{
		docType: docType,
		fields:  fields,
		input:   input,
	}
}

// Update advances the form one field per enter press. It reports
// completion once every field has been visited.
func (f *FormModel) Update(msg tea.Msg) (done bool, cmd tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && keyMsg.String() == "enter" {
		value := strings.TrimSpace(f.input.Value())

		if value == "" && f.fields[f.index].required {
			return false, nil
		}

		f.fields[f.index].value = value
		f.index++
		f.input.SetValue("")

		if f.index >= len(f.fields) {
			return true, nil
		}

		return false, nil
	}

	f.input, cmd = f.input.Update(msg)
	return false, cmd
}

func (f *FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.docType.Label()))
	b.WriteString("\n")

	for i := 0; i < f.index; i++ {
		b.WriteString(labelStyle.Render(f.fields[i].label+": ") + f.fields[i].value + "\n")
	}

	field := f.fields[f.index]
	marker := ""
	if field.required {
		marker = " (obrigatório)"
	}

	b.WriteString(fmt.Sprintf("\n%s%s\n", labelStyle.Render(field.label), labelStyle.Render(marker)))
	b.WriteString(f.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter confirmar campo · ctrl+c sair"))

	return b.String()
}

// FormData assembles the collected answers
func (f *FormModel) FormData() prompts.FormData {
	get := func(i int) string {
		if i < len(f.fields) {
			return f.fields[i].value
		}
		return ""
	}

	data := prompts.FormData{
		OrganName:         get(0),
		City:              get(1),
		Modality:          get(2),
		JudgmentCriteria:  get(3),
		ObjectDescription: get(4),
		EstimatedValue:    get(5),
		Justification:     get(6),
		AdditionalInfo:    get(7),
	}

	if f.docType == prompts.DocTypeImpugnacao {
		data.ImpugnacaoText = get(8)
	}

	return data
}
