package tui

import "errors"

// ErrPromptCancelled is returned when the user abandons the path prompt
// or input ends before a path is entered.
var ErrPromptCancelled = errors.New("tui: prompt cancelled")
