package tui

import "github.com/steviee/go-gitmoji/internal/action"

// copiedMsg is sent when a copy completes
type copiedMsg struct {
	result *action.Result
	err    error
}

// ConfigChangedMsg tells the picker that the settings source changed.
type ConfigChangedMsg struct{}

// clearErrorMsg is sent to clear the error message
type clearErrorMsg struct{}
