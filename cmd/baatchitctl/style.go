package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")).Width(12)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#607D8B"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9800"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44336"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4081"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func field(label string, value any) string {
	return labelStyle.Render(label+":") + " " + fmt.Sprint(value)
}

func printFields(rows ...string) {
	fmt.Println(strings.Join(rows, "\n"))
}

func statusText(s string) string {
	switch s {
	case "READY":
		return okStyle.Render(s)
	case "DEGRADED", "RESTORING", "BOOTING":
		return warnStyle.Render(s)
	default:
		return errStyle.Render(s)
	}
}

func onOff(b bool) string {
	if b {
		return okStyle.Render("on")
	}
	return mutedStyle.Render("off")
}

// messageStatus renders a delivery state the way the chat view does.
func messageStatus(s string) string {
	switch s {
	case "sending":
		return mutedStyle.Render("… sending")
	case "sent":
		return mutedStyle.Render("✓ sent")
	case "delivered":
		return mutedStyle.Render("✓✓ delivered")
	case "read":
		return okStyle.Render("✓✓ read")
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
