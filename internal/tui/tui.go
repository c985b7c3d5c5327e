package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	return &Model{
		state:  StatePicker,
		picker: NewPicker(),
		viewer: NewViewer(),
		client: NewWSClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ErrorMsg{err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewer.Resize(msg.Width, msg.Height)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case ConnectedMsg:
		return m, nil

	case ChunkMsg:
		m.viewer.Append(msg.Text)
		return m, m.client.WaitForEvent()

	case DoneMsg:
		m.viewer.done = true
		m.viewer.saved = msg.Saved
		m.state = StateDone
		return m, nil

	case StreamErrMsg:
		m.err = fmt.Errorf("%s", msg.Message)
		return m, nil
	}

	switch m.state {
	case StatePicker:
		if docType, ok := m.picker.Update(msg); ok {
			m.form = NewForm(docType)
			m.state = StateForm
		}
		return m, nil

	case StateForm:
		done, cmd := m.form.Update(msg)

		if done {
			m.state = StateStreaming

			docType := m.form.docType
			formData := m.form.FormData()

			return m, tea.Batch(
				m.viewer.Init(),
				func() tea.Msg {
					if err := m.client.Generate(docType, formData); err != nil {
						return ErrorMsg{err: err}
					}
					return <-m.client.events
				},
			)
		}

		return m, cmd

	case StateStreaming, StateDone:
		return m, m.viewer.Update(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StatePicker:
		return m.picker.View()

	case StateForm:
		return m.form.View()

	case StateStreaming, StateDone:
		return m.viewer.View()

	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return "\n  " + errStyle.Render(fmt.Sprintf("Erro: %v", err)) + "\n\n  Press Ctrl+C to exit\n"
}
