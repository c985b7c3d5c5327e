package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func NewViewer() *ViewerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ViewerModel{
		spinner: sp,
	}
}

func (v *ViewerModel) Init() tea.Cmd {
	return v.spinner.Tick
}

func (v *ViewerModel) Resize(width, height int) {
	if !v.ready {
		v.viewport = viewport.New(width, height-4)
		v.ready = true
	} else {
		v.viewport.Width = width
		v.viewport.Height = height - 4
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err == nil {
		v.renderer = renderer
	}

	v.refresh()
}

// Append adds a streamed fragment and re-renders the document
func (v *ViewerModel) Append(fragment string) {
	v.content += fragment
	v.refresh()
	v.viewport.GotoBottom()
}

func (v *ViewerModel) refresh() {
	if !v.ready {
		return
	}

	rendered := v.content

	if v.renderer != nil {
		if out, err := v.renderer.Render(v.content); err == nil {
			rendered = out
		}
	}

	v.viewport.SetContent(rendered)
}

func (v *ViewerModel) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !v.done {
		v.spinner, cmd = v.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (v *ViewerModel) View() string {
	var b strings.Builder

	if v.done {
		status := "Geração concluída."
		if v.saved {
			status = savedStyle.Render("Geração concluída. Documento salvo.")
		}
		b.WriteString(status)
	} else {
		b.WriteString(statusStyle.Render(v.spinner.View() + " Gerando documento..."))
	}

	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ rolar · ctrl+c sair"))

	return b.String()
}
