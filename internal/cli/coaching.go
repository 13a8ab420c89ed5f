package cli

import "math/rand"

// Random coaching text lives at the CLI edge: the insights core stays
// deterministic given now.

var coachingPrompts = []string{
	"Which task, if completed today, would unlock the most progress?",
	"Is there a commitment you can delegate or decline to protect focus?",
	"What would make your tomorrow feel lighter?",
	"Which habit will give you energy for the week ahead?",
	"Is there a high-priority task missing a clear next step?",
}

var productivityTips = []string{
	"Batch similar tasks into themed blocks to reduce context switching.",
	"Use the 1-3-5 planning method: 1 big, 3 medium, 5 small wins per day.",
	"Schedule inbox time instead of living inside it.",
	"Close your day with a 5-minute review and reset ritual.",
	"Protect your first 90 minutes for deep work when possible.",
}

func randomCoachingPrompt() string {
	return coachingPrompts[rand.Intn(len(coachingPrompts))]
}

func randomProductivityTip() string {
	return productivityTips[rand.Intn(len(productivityTips))]
}
