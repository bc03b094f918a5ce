// internal/engine/workstyle/bank.go
package workstyle

import "fmt"

// Dimension identifies one of the five work-style dimensions.
type Dimension string

const (
	DimensionLeadership    Dimension = "leadership"
	DimensionCollaboration Dimension = "collaboration"
	DimensionInnovation    Dimension = "innovation"
	DimensionStructure     Dimension = "structure"
	DimensionRiskTolerance Dimension = "riskTolerance"
)

// Dimensions lists all five in canonical order.
var Dimensions = []Dimension{
	DimensionLeadership,
	DimensionCollaboration,
	DimensionInnovation,
	DimensionStructure,
	DimensionRiskTolerance,
}

// Item is one work-style statement rated 1-5. Ratings align positionally
// with Items().
type Item struct {
	ID        string
	Dimension Dimension
	Statement string
}

var items = []Item{
	{"ws-01", DimensionLeadership, "I naturally take charge when a group lacks direction."},
	{"ws-02", DimensionCollaboration, "I do my best work as part of a team."},
	{"ws-03", DimensionInnovation, "I look for a new approach before reusing an old one."},
	{"ws-04", DimensionStructure, "I like clear processes and defined responsibilities."},
	{"ws-05", DimensionRiskTolerance, "I am comfortable making decisions with incomplete information."},
	{"ws-06", DimensionLeadership, "People tend to look to me for decisions."},
	{"ws-07", DimensionCollaboration, "I would rather share credit than work alone."},
	{"ws-08", DimensionInnovation, "I enjoy experimenting even when it might fail."},
	{"ws-09", DimensionStructure, "I plan my work before starting it."},
	{"ws-10", DimensionRiskTolerance, "Uncertainty energizes me more than it worries me."},
	{"ws-11", DimensionLeadership, "I am comfortable being accountable for a team's results."},
	{"ws-12", DimensionCollaboration, "I actively seek out other people's input."},
	{"ws-13", DimensionInnovation, "I often question why things are done the way they are."},
	{"ws-14", DimensionStructure, "I keep detailed track of my tasks and deadlines."},
	{"ws-15", DimensionRiskTolerance, "I would join an early-stage venture over an established firm."},
}

// Items returns the full immutable item list in presentation order.
func Items() []Item {
	return items
}

// VerifyItems checks the static table at process start.
func VerifyItems(inventory []Item) error {
	if len(inventory) == 0 {
		return fmt.Errorf("work-style inventory is empty")
	}
	seen := make(map[string]bool, len(inventory))
	valid := make(map[Dimension]bool, len(Dimensions))
	for _, d := range Dimensions {
		valid[d] = true
	}
	for _, item := range inventory {
		if item.ID == "" || item.Statement == "" {
			return fmt.Errorf("item %q has empty id or statement", item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true
		if !valid[item.Dimension] {
			return fmt.Errorf("item %q has unknown dimension %q", item.ID, item.Dimension)
		}
	}
	return nil
}
