package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/licitgov/server/internal/prompts"
)

// represents the current state of the TUI
type AppState int

const (
	StatePicker AppState = iota
	StateForm
	StateStreaming
	StateDone
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	picker *PickerModel
	form   *FormModel
	viewer *ViewerModel
	client *WSClient
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent when the websocket connection is up
type ConnectedMsg struct{}

// sent for every streamed fragment
type ChunkMsg struct {
	Text string
}

// sent when the stream finishes
type DoneMsg struct {
	Length int
	Saved  bool
}

// sent when the stream fails
type StreamErrMsg struct {
	Code    string
	Message string
}

// document type selection screen
type PickerModel struct {
	types  []prompts.DocumentType
	cursor int
}

// sequential form for the process facts
type FormModel struct {
	docType prompts.DocumentType
	fields  []formField
	index   int
	input   textinput.Model
}

type formField struct {
	label    string
	value    string
	required bool
}

// streamed output screen
type ViewerModel struct {
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	content  string
	done     bool
	saved    bool
	ready    bool
}
