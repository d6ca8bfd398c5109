package progress

// Achievement is a milestone shown on the hub.
type Achievement struct {
	Title       string
	Description string
	Icon        string
	Unlocked    bool
}

// Achievements returns the milestones to display for s. Nothing is shown
// before the first lesson; the Expert Learner card is listed locked until
// twenty lessons are done and then disappears.
func Achievements(s State) []Achievement {
	if s.TotalLessonsCompleted == 0 {
		return nil
	}

	var out []Achievement
	if s.TotalLessonsCompleted >= 5 {
		out = append(out, Achievement{
			Title:       "Learning Master",
			Description: "Completed 5 lessons",
			Icon:        "🎓",
			Unlocked:    true,
		})
	}
	if s.EnergyOrbs >= 10 {
		out = append(out, Achievement{
			Title:       "Energy Collector",
			Description: "Collected 10 Energy Orbs",
			Icon:        "✪",
			Unlocked:    true,
		})
	}
	if s.CurrentLevel >= 3 {
		out = append(out, Achievement{
			Title:       "Rising Star",
			Description: "Reached Level 3",
			Icon:        "✨",
			Unlocked:    true,
		})
	}
	if s.TotalLessonsCompleted < 20 {
		out = append(out, Achievement{
			Title:       "Expert Learner",
			Description: "Complete 20 lessons",
			Icon:        "🧠",
		})
	}
	return out
}
