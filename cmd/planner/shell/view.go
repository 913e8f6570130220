// Package shell provides the interactive menu interface for the planner.
// This file contains view rendering functions.
package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const menuText = `1. Load Data Structure
2. Print Course List
3. Print Course
9. Exit`

func (m Model) View() string {
	if m.quitting {
		return "Thank you for using the ABCU Course Planner. Goodbye!\n"
	}
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	transcript := m.styles.Content.Render(m.viewport.View())
	menu := m.renderMenu()

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1)
	inputArea := inputStyle.Render(m.input.View())

	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		transcript,
		menu,
		inputArea,
		footer,
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" ABCU Course Planner ")

	var status string
	if m.isLoading {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Badge.Render("Loading courses..."))
	} else if m.loaded {
		status = m.styles.Success.Render(fmt.Sprintf("%d courses loaded", m.tree.Len()))
	} else {
		status = m.styles.Muted.Render("No data loaded")
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", status)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderMenu() string {
	switch m.mode {
	case ModeFilePrompt:
		return m.styles.Prompt.Render("Enter course data file name:")
	case ModeCoursePrompt:
		return m.styles.Prompt.Render("Please enter the course number (for example, CS200):")
	default:
		return m.styles.Body.Render(menuText)
	}
}

func (m Model) renderFooter() string {
	help := "Enter: confirm | Esc: back | Ctrl+C: exit"
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(m.styles.Muted.Render(help))
}

// renderHistory formats the transcript for the viewport. Planner entries are
// rendered as markdown; user entries echo the raw input.
func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, e := range m.history {
		switch e.Role {
		case "user":
			userStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Primary).
				MarginTop(1)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(e.Content))
			sb.WriteString("\n")

		default: // "planner"
			plannerStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Accent).
				MarginTop(1)
			sb.WriteString(plannerStyle.Render("Planner") + "\n")
			sb.WriteString(m.safeRenderMarkdown(e.Content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery; if glamour fails
// for any reason the raw text is shown instead.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
