package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/urepair/console/internal/model"
)

// Theme defines the console's color palette. All colors are ANSI
// 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	TabActive        lipgloss.Color
	TabInactive      lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorText        lipgloss.Color

	StatusNew        lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusResolved   lipgloss.Color
	StatusClosed     lipgloss.Color

	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color
	PriorityUrgent lipgloss.Color
}

// StatusColor returns the color for a ticket status. Unknown values
// render faint.
func (theme Theme) StatusColor(status model.Status) lipgloss.Color {
	switch status {
	case model.StatusNew:
		return theme.StatusNew
	case model.StatusInProgress:
		return theme.StatusInProgress
	case model.StatusResolved:
		return theme.StatusResolved
	case model.StatusClosed:
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// PriorityColor returns the color for a ticket priority. Unknown
// values render faint.
func (theme Theme) PriorityColor(priority model.Priority) lipgloss.Color {
	switch priority {
	case model.PriorityLow:
		return theme.PriorityLow
	case model.PriorityMedium:
		return theme.PriorityMedium
	case model.PriorityHigh:
		return theme.PriorityHigh
	case model.PriorityUrgent:
		return theme.PriorityUrgent
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("39"),
	TabActive:        lipgloss.Color("39"),
	TabInactive:      lipgloss.Color("245"),
	BorderColor:      lipgloss.Color("238"),
	HelpText:         lipgloss.Color("241"),
	ErrorText:        lipgloss.Color("203"),

	StatusNew:        lipgloss.Color("203"),
	StatusInProgress: lipgloss.Color("214"),
	StatusResolved:   lipgloss.Color("114"),
	StatusClosed:     lipgloss.Color("245"),

	PriorityLow:    lipgloss.Color("114"),
	PriorityMedium: lipgloss.Color("220"),
	PriorityHigh:   lipgloss.Color("214"),
	PriorityUrgent: lipgloss.Color("203"),
}
