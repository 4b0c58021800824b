package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// LoadedMsg signals that a saved invoice became the working invoice
// and the builder should take over.
type LoadedMsg struct{}
