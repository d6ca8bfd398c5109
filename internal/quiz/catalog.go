package quiz

// builtinModules is the catalog shipped with the game.
var builtinModules = []Module{
	{
		ID:          "mind_boost",
		Title:       "Mind Boost",
		Description: "Enhance your recall with pattern recognition",
		Icon:        "🧠",
		Tasks: []Task{
			{
				Question:     "Which sequence was shown? (Red, Blue, Green, Yellow)",
				Options:      []string{"R-B-G-Y", "B-R-Y-G", "G-Y-R-B", "Y-G-B-R"},
				CorrectIndex: 0,
				Explanation:  "Great! Pattern recognition improves working recall.",
			},
			{
				Question:     "How many items were in the last group?",
				Options:      []string{"3", "5", "7", "9"},
				CorrectIndex: 1,
				Explanation:  "Counting exercises strengthen numerical recall.",
			},
			{
				Question:     "What was the first word in the sequence?",
				Options:      []string{"Apple", "Brain", "Cloud", "Dream"},
				CorrectIndex: 0,
				Explanation:  "Word recall builds verbal processing pathways.",
			},
		},
	},
	{
		ID:          "focus_sprint",
		Title:       "Focus Sprint",
		Description: "Train sustained attention and concentration",
		Icon:        "🎯",
		Tasks: []Task{
			{
				Question:     "Which shape appeared most frequently?",
				Options:      []string{"Circle", "Square", "Triangle", "Diamond"},
				CorrectIndex: 2,
				Explanation:  "Attention to detail improves focus accuracy.",
			},
			{
				Question:     "What color was the moving object?",
				Options:      []string{"Red", "Blue", "Green", "Purple"},
				CorrectIndex: 1,
				Explanation:  "Tracking moving objects enhances visual attention.",
			},
			{
				Question:     "How many times did the pattern change?",
				Options:      []string{"2", "4", "6", "8"},
				CorrectIndex: 2,
				Explanation:  "Pattern monitoring develops sustained focus.",
			},
		},
	},
	{
		ID:          "logic_flow",
		Title:       "Logic Flow",
		Description: "Develop logical reasoning and problem-solving",
		Icon:        "🧩",
		Tasks: []Task{
			{
				Question:     "If A > B and B > C, then:",
				Options:      []string{"A < C", "A = C", "A > C", "Cannot determine"},
				CorrectIndex: 2,
				Explanation:  "Transitive relationships are key to logical reasoning.",
			},
			{
				Question:     "What comes next in the sequence: 2, 4, 8, 16, ?",
				Options:      []string{"24", "32", "48", "64"},
				CorrectIndex: 1,
				Explanation:  "Pattern recognition strengthens logical thinking.",
			},
			{
				Question:     "If all roses are flowers and some flowers are red, then:",
				Options:      []string{"All roses are red", "Some roses might be red", "No roses are red", "All flowers are roses"},
				CorrectIndex: 1,
				Explanation:  "Logical deduction helps with complex reasoning.",
			},
		},
	},
	{
		ID:          "speed_processing",
		Title:       "Speed Processing",
		Description: "Improve reaction time and quick thinking",
		Icon:        "⚡",
		Tasks: []Task{
			{
				Question:     "Quick! What's 15 + 27?",
				Options:      []string{"40", "42", "44", "46"},
				CorrectIndex: 1,
				Explanation:  "Mental math builds processing speed.",
			},
			{
				Question:     "Which word doesn't belong: Cat, Dog, Bird, Car?",
				Options:      []string{"Cat", "Dog", "Bird", "Car"},
				CorrectIndex: 3,
				Explanation:  "Rapid categorization improves cognitive flexibility.",
			},
			{
				Question:     "How many vowels in 'EDUCATION'?",
				Options:      []string{"3", "4", "5", "6"},
				CorrectIndex: 2,
				Explanation:  "Quick analysis tasks enhance processing efficiency.",
			},
		},
	},
	{
		ID:          "creative_thinking",
		Title:       "Creative Thinking",
		Description: "Boost creativity and innovative problem-solving",
		Icon:        "💡",
		Tasks: []Task{
			{
				Question:     "How many uses can you think of for a paperclip?",
				Options:      []string{"1-3 uses", "4-6 uses", "7-10 uses", "10+ uses"},
				CorrectIndex: 3,
				Explanation:  "Creative thinking involves generating multiple solutions.",
			},
			{
				Question:     "What connects: Ocean, Desert, Library, Mind?",
				Options:      []string{"Water", "Vastness", "Knowledge", "Silence"},
				CorrectIndex: 1,
				Explanation:  "Abstract thinking finds unexpected connections.",
			},
			{
				Question:     "If you could redesign a chair, what would you change?",
				Options:      []string{"Add wheels", "Make it foldable", "Add storage", "All of the above"},
				CorrectIndex: 3,
				Explanation:  "Innovation combines multiple improvements.",
			},
		},
	},
	{
		ID:          "emotional_intelligence",
		Title:       "Emotional Intelligence",
		Description: "Develop empathy and social awareness",
		Icon:        "❤",
		Tasks: []Task{
			{
				Question:     "Someone looks upset after a meeting. What should you do?",
				Options:      []string{"Ignore it", "Ask if they're okay", "Tell them to cheer up", "Gossip about it"},
				CorrectIndex: 1,
				Explanation:  "Empathy starts with genuine concern and active listening.",
			},
			{
				Question:     "How do you handle criticism?",
				Options:      []string{"Get defensive", "Listen and learn", "Ignore it", "Argue back"},
				CorrectIndex: 1,
				Explanation:  "Emotional maturity means learning from feedback.",
			},
			{
				Question:     "What helps build trust in relationships?",
				Options:      []string{"Being right", "Consistency", "Being popular", "Avoiding conflict"},
				CorrectIndex: 1,
				Explanation:  "Trust is built through reliable, consistent behavior.",
			},
		},
	},
	{
		ID:          "critical_analysis",
		Title:       "Critical Analysis",
		Description: "Sharpen analytical and evaluation skills",
		Icon:        "🔍",
		Tasks: []Task{
			{
				Question:     "What's the best way to evaluate news sources?",
				Options:      []string{"Check popularity", "Verify sources", "Trust headlines", "Follow trends"},
				CorrectIndex: 1,
				Explanation:  "Critical thinking requires source verification and fact-checking.",
			},
			{
				Question:     "When making decisions, what's most important?",
				Options:      []string{"Speed", "Popularity", "Evidence", "Intuition"},
				CorrectIndex: 2,
				Explanation:  "Good decisions are based on solid evidence and analysis.",
			},
			{
				Question:     "How do you spot bias in information?",
				Options:      []string{"Check emotions", "Look for balance", "Question motives", "All of the above"},
				CorrectIndex: 3,
				Explanation:  "Bias detection requires multiple analytical approaches.",
			},
		},
	},
	{
		ID:          "mindfulness_focus",
		Title:       "Mindfulness & Focus",
		Description: "Enhance present-moment awareness and concentration",
		Icon:        "🍃",
		Tasks: []Task{
			{
				Question:     "What's the key to mindful breathing?",
				Options:      []string{"Breathing fast", "Counting breaths", "Holding breath", "Breathing loudly"},
				CorrectIndex: 1,
				Explanation:  "Mindful breathing involves focused attention on the breath cycle.",
			},
			{
				Question:     "How do you handle distracting thoughts during focus time?",
				Options:      []string{"Fight them", "Acknowledge and return", "Ignore completely", "Follow them"},
				CorrectIndex: 1,
				Explanation:  "Mindfulness teaches gentle acknowledgment without judgment.",
			},
			{
				Question:     "What improves concentration the most?",
				Options:      []string{"Multitasking", "Single-tasking", "Background noise", "Constant stimulation"},
				CorrectIndex: 1,
				Explanation:  "Deep focus comes from dedicated attention to one task.",
			},
		},
	},
}

// Builtin returns the catalog shipped with the game.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinModules)
	if err != nil {
		panic("quiz: invalid builtin catalog: " + err.Error())
	}
	return c
}
