package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
)

// Layout constants
const (
	blockWidth    = 24
	blockHeight   = 6
	swatchWidth   = 10
	swatchHeight  = 3
	lightTextOver = 0.5 // luminance above which labels are drawn dark
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)
	correctColor = lipgloss.Color("46")
	wrongColor   = lipgloss.Color("196")
	cursorColor  = lipgloss.Color("255")
	idleColor    = lipgloss.Color("240")
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view.screen {
	case game.ScreenPlaying:
		body = m.viewPlaying()
	case game.ScreenEnded:
		body = m.viewEnded()
	default:
		body = m.viewStart()
	}

	body = lipgloss.JoinVertical(lipgloss.Center, body, "", m.help.View(m.keys))

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewStart() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("H U E M A T C H"),
		"",
		textStyle.Render("Pick the swatch that matches the color block"),
		textStyle.Render("before the timer runs out."),
		"",
		dimStyle.Render("Press enter to start"),
	)
}

func (m Model) viewPlaying() string {
	v := m.view

	block := ""
	if v.hasBlock {
		block = renderBlock(v.block, blockWidth, blockHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("Score: %d", v.score)),
		"",
		block,
		"",
		renderSwatches(v),
		"",
		v.timer.ViewAs(v.fraction),
	)
}

func (m Model) viewEnded() string {
	v := m.view

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		"",
		scoreStyle.Render(fmt.Sprintf("Final Score: %d", v.finalScore)),
		"",
		textStyle.Render(highScoreLine(v.best)),
	)
}

// highScoreLine formats the all-time best for the end screen.
func highScoreLine(rec game.HighScoreRecord) string {
	if date := rec.Date(); date != "" {
		return fmt.Sprintf("All-Time High Score: %d (Achieved on: %s)", rec.Score, date)
	}
	return fmt.Sprintf("All-Time High Score: %d", rec.Score)
}

// renderBlock draws a solid rectangle in true color.
func renderBlock(c core.Color, width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Join(lines, "\n"))
}

// renderSwatches draws the options side by side with their slot numbers.
// The highlighted swatch gets a bright border; a judged one shows the verdict.
func renderSwatches(v *view) string {
	swatches := make([]string, 0, len(v.options))
	for i, c := range v.options {
		border := idleColor
		if i == v.cursor {
			border = cursorColor
		}
		label := fmt.Sprintf("%d", i+1)
		if kind, ok := v.feedback[i]; ok {
			if kind == game.FeedbackCorrect {
				border = correctColor
				label = "✓"
			} else {
				border = wrongColor
				label = "✗"
			}
		}

		fg := lipgloss.Color("255")
		if c.Luminance() > lightTextOver {
			fg = lipgloss.Color("16")
		}

		face := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(fg).
			Width(swatchWidth).
			Height(swatchHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(label)

		swatches = append(swatches, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Margin(0, 1).
			Render(face))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}
