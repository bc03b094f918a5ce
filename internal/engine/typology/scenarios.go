// internal/engine/typology/scenarios.go
package typology

// Scenario is one forced-choice situation. Each option carries a signed delta
// per axis (extraversion, sensing, thinking, judging); choosing it moves the
// running axis totals by exactly those amounts.
type Scenario struct {
	ID      string
	Prompt  string
	Options [4]Option
}

// Option is one of a scenario's four choices.
type Option struct {
	Text   string
	Deltas AxisDeltas
}

// AxisDeltas is the 4-tuple of signed adjustments, one per bipolar axis.
type AxisDeltas struct {
	Extraversion int
	Sensing      int
	Thinking     int
	Judging      int
}

var scenarios = []Scenario{
	{
		ID:     "sc-01",
		Prompt: "A new project kicks off. Your first instinct is to:",
		Options: [4]Option{
			{"Gather the whole team to talk it through", AxisDeltas{Extraversion: 8, Sensing: 0, Thinking: 0, Judging: 2}},
			{"Sketch a detailed plan before involving anyone", AxisDeltas{Extraversion: -6, Sensing: 4, Thinking: 2, Judging: 8}},
			{"Imagine where the project could lead long-term", AxisDeltas{Extraversion: -2, Sensing: -8, Thinking: 0, Judging: -4}},
			{"Start on the most concrete task immediately", AxisDeltas{Extraversion: 0, Sensing: 8, Thinking: 2, Judging: 2}},
		},
	},
	{
		ID:     "sc-02",
		Prompt: "A teammate's proposal has a flaw. You:",
		Options: [4]Option{
			{"Point out the logical gap directly", AxisDeltas{Extraversion: 2, Sensing: 0, Thinking: 8, Judging: 2}},
			{"Raise it gently so they aren't discouraged", AxisDeltas{Extraversion: 0, Sensing: 0, Thinking: -8, Judging: 0}},
			{"Test the idea against real data first", AxisDeltas{Extraversion: -2, Sensing: 8, Thinking: 4, Judging: 2}},
			{"Suggest brainstorming alternatives together", AxisDeltas{Extraversion: 6, Sensing: -4, Thinking: -2, Judging: -4}},
		},
	},
	{
		ID:     "sc-03",
		Prompt: "Your weekend plans fall through. You feel:",
		Options: [4]Option{
			{"Relieved to have unscheduled time alone", AxisDeltas{Extraversion: -8, Sensing: 0, Thinking: 0, Judging: -2}},
			{"Eager to rally friends for something else", AxisDeltas{Extraversion: 8, Sensing: 0, Thinking: 0, Judging: 0}},
			{"Uneasy until a replacement plan exists", AxisDeltas{Extraversion: 0, Sensing: 2, Thinking: 0, Judging: 8}},
			{"Curious what the open day might bring", AxisDeltas{Extraversion: 0, Sensing: -6, Thinking: 0, Judging: -8}},
		},
	},
	{
		ID:     "sc-04",
		Prompt: "When learning something new, you prefer:",
		Options: [4]Option{
			{"Step-by-step instructions with examples", AxisDeltas{Extraversion: 0, Sensing: 8, Thinking: 0, Judging: 4}},
			{"The big picture before the details", AxisDeltas{Extraversion: 0, Sensing: -8, Thinking: 0, Judging: -2}},
			{"Discussing it with someone who knows", AxisDeltas{Extraversion: 8, Sensing: 0, Thinking: -2, Judging: 0}},
			{"Working through it alone, trial and error", AxisDeltas{Extraversion: -8, Sensing: 2, Thinking: 2, Judging: -4}},
		},
	},
	{
		ID:     "sc-05",
		Prompt: "A decision affects several people. You weigh:",
		Options: [4]Option{
			{"What the evidence and outcomes support", AxisDeltas{Extraversion: 0, Sensing: 2, Thinking: 8, Judging: 2}},
			{"How each person will be affected", AxisDeltas{Extraversion: 0, Sensing: 0, Thinking: -8, Judging: 0}},
			{"Both, but talk it out before deciding", AxisDeltas{Extraversion: 6, Sensing: 0, Thinking: -2, Judging: -2}},
			{"Both, but decide quickly and move on", AxisDeltas{Extraversion: 0, Sensing: 2, Thinking: 4, Judging: 8}},
		},
	},
	{
		ID:     "sc-06",
		Prompt: "Your desk right now is most likely:",
		Options: [4]Option{
			{"Orderly, everything in its place", AxisDeltas{Extraversion: 0, Sensing: 4, Thinking: 0, Judging: 8}},
			{"Organized chaos only you understand", AxisDeltas{Extraversion: 0, Sensing: -2, Thinking: 0, Judging: -8}},
			{"Covered in notes from conversations", AxisDeltas{Extraversion: 6, Sensing: 0, Thinking: -2, Judging: -2}},
			{"Minimal, you work wherever is quiet", AxisDeltas{Extraversion: -8, Sensing: 0, Thinking: 2, Judging: 0}},
		},
	},
	{
		ID:     "sc-07",
		Prompt: "In a heated group debate you usually:",
		Options: [4]Option{
			{"Argue your position energetically", AxisDeltas{Extraversion: 8, Sensing: 0, Thinking: 6, Judging: 2}},
			{"Listen and speak once you are sure", AxisDeltas{Extraversion: -8, Sensing: 2, Thinking: 2, Judging: 2}},
			{"Look for common ground between sides", AxisDeltas{Extraversion: 0, Sensing: 0, Thinking: -8, Judging: -2}},
			{"Question assumptions nobody has examined", AxisDeltas{Extraversion: -2, Sensing: -8, Thinking: 4, Judging: -4}},
		},
	},
	{
		ID:     "sc-08",
		Prompt: "A deadline moved up a week. You:",
		Options: [4]Option{
			{"Re-plan the remaining work immediately", AxisDeltas{Extraversion: 0, Sensing: 2, Thinking: 2, Judging: 8}},
			{"Trust you'll adapt as the week unfolds", AxisDeltas{Extraversion: 0, Sensing: -2, Thinking: 0, Judging: -8}},
			{"Call the team together to divide tasks", AxisDeltas{Extraversion: 8, Sensing: 2, Thinking: 0, Judging: 4}},
			{"Quietly cut scope to the essentials", AxisDeltas{Extraversion: -6, Sensing: 4, Thinking: 6, Judging: 2}},
		},
	},
	{
		ID:     "sc-09",
		Prompt: "The story that grips you most is about:",
		Options: [4]Option{
			{"Real events, told accurately", AxisDeltas{Extraversion: 0, Sensing: 8, Thinking: 2, Judging: 0}},
			{"A possible future that doesn't exist yet", AxisDeltas{Extraversion: 0, Sensing: -8, Thinking: 0, Judging: -2}},
			{"People and what drives them", AxisDeltas{Extraversion: 2, Sensing: -2, Thinking: -8, Judging: 0}},
			{"A system or mystery being worked out", AxisDeltas{Extraversion: -4, Sensing: 0, Thinking: 8, Judging: 2}},
		},
	},
	{
		ID:     "sc-10",
		Prompt: "Friends would describe your plans as:",
		Options: [4]Option{
			{"Booked weeks in advance", AxisDeltas{Extraversion: 4, Sensing: 2, Thinking: 0, Judging: 8}},
			{"Spontaneous, decided day-of", AxisDeltas{Extraversion: 2, Sensing: 0, Thinking: 0, Judging: -8}},
			{"Quiet and deliberately kept small", AxisDeltas{Extraversion: -8, Sensing: 2, Thinking: 0, Judging: 2}},
			{"Ideas more than plans", AxisDeltas{Extraversion: 0, Sensing: -8, Thinking: -2, Judging: -6}},
		},
	},
}

// Scenarios returns the full immutable scenario list in presentation order.
func Scenarios() []Scenario {
	return scenarios
}
