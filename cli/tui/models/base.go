package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// BaseModel provides common functionality for all TUI models
type BaseModel struct {
	ctx      context.Context
	width    int
	height   int
	ready    bool
	quitting bool
	err      error
}

// NewBaseModel creates a new base model
func NewBaseModel(ctx context.Context) BaseModel {
	return BaseModel{ctx: ctx}
}

// Context returns the context
func (m BaseModel) Context() context.Context {
	return m.ctx
}

// Size returns the terminal size
func (m BaseModel) Size() (width, height int) {
	return m.width, m.height
}

// IsReady returns whether the model is ready
func (m BaseModel) IsReady() bool {
	return m.ready
}

// IsQuitting returns whether the model is quitting
func (m BaseModel) IsQuitting() bool {
	return m.quitting
}

// Error returns any error that occurred
func (m BaseModel) Error() error {
	return m.err
}

// SetSize sets the terminal size
func (m *BaseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
}

// SetError sets an error
func (m *BaseModel) SetError(err error) {
	m.err = err
}

// Quit marks the model as quitting
func (m *BaseModel) Quit() {
	m.quitting = true
}

// Update handles common messages for all models
func (m *BaseModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quit()
			return tea.Quit
		}
	}
	return nil
}
