// Package ui implements the interactive pieces of the sync command using
// bubbletea's Elm architecture.
//
// Two small prompt models cover everything the command needs: a free-text
// prompt (format selection) built on charmbracelet/bubbles/textinput, and a
// y/n confirmation prompt (clean, overwrite, proceed). Both run as their own
// short-lived bubbletea program and hand a plain value back to the caller,
// so decision-gathering stays decoupled from resolution.
//
// The package also renders the pre-confirmation job summary table via
// go-pretty.
package ui
