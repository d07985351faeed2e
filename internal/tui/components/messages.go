// Package components contains the reusable bubbletea models composing the
// triage console.
package components

// CloseInspectionMsg dismisses the inspection modal.
type CloseInspectionMsg struct{}
