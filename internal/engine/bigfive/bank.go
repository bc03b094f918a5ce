// internal/engine/bigfive/bank.go
package bigfive

import "fmt"

// Trait identifies one of the five independent traits.
type Trait string

const (
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitExtraversion      Trait = "extraversion"
	TraitAgreeableness     Trait = "agreeableness"
	TraitNeuroticism       Trait = "neuroticism"
)

// Traits lists all five in canonical order.
var Traits = []Trait{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// Item is one inventory statement. Ratings align positionally with Items():
// the i-th inbound rating answers the i-th item.
type Item struct {
	ID        string
	Trait     Trait
	Statement string
	// Reverse marks statements phrased so agreement indicates the LOW end
	// of the trait; the rating is inverted (6 - rating) before scoring.
	Reverse bool
}

// The inventory cycles O, C, E, A, N ten times, IPIP-style, with reversed
// items scattered through each trait.
var items = []Item{
	{"bf-01", TraitOpenness, "I have a vivid imagination.", false},
	{"bf-02", TraitConscientiousness, "I am always prepared.", false},
	{"bf-03", TraitExtraversion, "I am the life of the party.", false},
	{"bf-04", TraitAgreeableness, "I sympathize with others' feelings.", false},
	{"bf-05", TraitNeuroticism, "I get stressed out easily.", false},

	{"bf-06", TraitOpenness, "I am not interested in abstract ideas.", true},
	{"bf-07", TraitConscientiousness, "I leave my belongings around.", true},
	{"bf-08", TraitExtraversion, "I don't talk a lot.", true},
	{"bf-09", TraitAgreeableness, "I am not really interested in others.", true},
	{"bf-10", TraitNeuroticism, "I am relaxed most of the time.", true},

	{"bf-11", TraitOpenness, "I enjoy hearing new ideas.", false},
	{"bf-12", TraitConscientiousness, "I pay attention to details.", false},
	{"bf-13", TraitExtraversion, "I feel comfortable around people.", false},
	{"bf-14", TraitAgreeableness, "I take time out for others.", false},
	{"bf-15", TraitNeuroticism, "I worry about things.", false},

	{"bf-16", TraitOpenness, "I avoid philosophical discussions.", true},
	{"bf-17", TraitConscientiousness, "I make a mess of things.", true},
	{"bf-18", TraitExtraversion, "I keep in the background.", true},
	{"bf-19", TraitAgreeableness, "I insult people.", true},
	{"bf-20", TraitNeuroticism, "I seldom feel blue.", true},

	{"bf-21", TraitOpenness, "I enjoy thinking about the meaning of things.", false},
	{"bf-22", TraitConscientiousness, "I get chores done right away.", false},
	{"bf-23", TraitExtraversion, "I start conversations.", false},
	{"bf-24", TraitAgreeableness, "I make people feel at ease.", false},
	{"bf-25", TraitNeuroticism, "I am easily disturbed.", false},

	{"bf-26", TraitOpenness, "I do not enjoy going to art museums.", true},
	{"bf-27", TraitConscientiousness, "I often forget to put things back in their proper place.", true},
	{"bf-28", TraitExtraversion, "I have little to say.", true},
	{"bf-29", TraitAgreeableness, "I feel little concern for others.", true},
	{"bf-30", TraitNeuroticism, "I rarely get irritated.", true},

	{"bf-31", TraitOpenness, "I am full of ideas.", false},
	{"bf-32", TraitConscientiousness, "I follow a schedule.", false},
	{"bf-33", TraitExtraversion, "I talk to a lot of different people at parties.", false},
	{"bf-34", TraitAgreeableness, "I have a soft heart.", false},
	{"bf-35", TraitNeuroticism, "I change my mood a lot.", false},

	{"bf-36", TraitOpenness, "I have difficulty imagining things.", true},
	{"bf-37", TraitConscientiousness, "I shirk my duties.", true},
	{"bf-38", TraitExtraversion, "I prefer to stay in the background at social events.", true},
	{"bf-39", TraitAgreeableness, "I am indifferent to the feelings of others.", true},
	{"bf-40", TraitNeuroticism, "I remain calm under pressure.", true},

	{"bf-41", TraitOpenness, "I spend time reflecting on things.", false},
	{"bf-42", TraitConscientiousness, "I like order.", false},
	{"bf-43", TraitExtraversion, "I don't mind being the center of attention.", false},
	{"bf-44", TraitAgreeableness, "I take an interest in other people's lives.", false},
	{"bf-45", TraitNeuroticism, "I get upset easily.", false},

	{"bf-46", TraitOpenness, "I rarely look for a deeper meaning in things.", true},
	{"bf-47", TraitConscientiousness, "I find it hard to stick to a plan.", true},
	{"bf-48", TraitExtraversion, "I find it draining to be around many people.", true},
	{"bf-49", TraitAgreeableness, "I am hard to get to know.", true},
	{"bf-50", TraitNeuroticism, "I frequently feel overwhelmed.", false},
}

// Items returns the full immutable inventory in presentation order.
func Items() []Item {
	return items
}

// VerifyItems checks the static inventory at process start: fifty items,
// ten per trait, unique IDs, non-empty statements.
func VerifyItems(inventory []Item) error {
	if len(inventory) == 0 {
		return fmt.Errorf("big five inventory is empty")
	}

	seen := make(map[string]bool, len(inventory))
	perTrait := make(map[Trait]int, len(Traits))
	valid := make(map[Trait]bool, len(Traits))
	for _, tr := range Traits {
		valid[tr] = true
	}

	for _, item := range inventory {
		if item.ID == "" || item.Statement == "" {
			return fmt.Errorf("item %q has empty id or statement", item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true
		if !valid[item.Trait] {
			return fmt.Errorf("item %q has unknown trait %q", item.ID, item.Trait)
		}
		perTrait[item.Trait]++
	}

	for _, tr := range Traits {
		if perTrait[tr] == 0 {
			return fmt.Errorf("trait %q has no items", tr)
		}
	}

	return nil
}
