package main

import "github.com/charmbracelet/lipgloss"

// Paleta alineada con el PDF del listado.
var (
	colorPrimary = lipgloss.Color("#00467F")
	colorMuted   = lipgloss.Color("#646464")
	colorSuccess = lipgloss.Color("#1E7B34")
	colorError   = lipgloss.Color("#B00020")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Width(10)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)
