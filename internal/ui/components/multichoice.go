package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/ui/theme"
)

// optionLabels prefix the options of a multiple-choice question.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders a multiple-choice question. It holds no input state of
// its own; the owning screen copies the quiz engine's state in before every
// render.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	// Selected is the chosen option, or -1.
	Selected int
	// Revealed colours the correct option and a wrong choice.
	Revealed bool
	Width    int
}

// NewMultiChoice creates a multiple-choice view with nothing selected.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     -1,
	}
}

// OptionLabel returns the letter shown for option i.
func OptionLabel(i int) string {
	if i >= 0 && i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if m.Width > 0 {
		questionStyle = questionStyle.Width(m.Width)
	}
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}

	return s
}

// IsCorrect reports whether the revealed choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Selected == m.CorrectIndex
}
