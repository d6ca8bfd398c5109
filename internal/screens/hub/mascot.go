package hub

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default pink
	MascotCelebrating                      // Gold, star eyes: just levelled up
	MascotSleepy                           // Blue: nothing played yet
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ✪✪✪ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ✪✪✪ │
└─╥═╥─┘
  ╚═╝`

const mascotSleepy = `┌─────┐
│ − − │ z
│  ▽  │
│ ✪✪✪ │
└─────┘`

// mascotFor picks the variant matching the player's progress.
func mascotFor(s progress.State) MascotVariant {
	switch {
	case s.TotalLessonsCompleted == 0 && s.EnergyOrbs == 0:
		return MascotSleepy
	case s.TotalLessonsCompleted > 0 && s.TotalLessonsCompleted%progress.LessonsPerLevel == 0:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Secondary
	case MascotSleepy:
		art = mascotSleepy
		fg = theme.Info
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
