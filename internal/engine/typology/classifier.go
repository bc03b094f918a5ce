// internal/engine/typology/classifier.go

// Package typology accumulates four bipolar dimension scores from weighted
// scenario choices and derives the 4-letter type code.
package typology

import (
	"fmt"

	"assessment-engine/internal/engine/scoring"
	"assessment-engine/internal/models"
)

// descriptions covers all 16 combinations. The fallback below should be
// unreachable but keeps a table gap from failing a whole profile.
var descriptions = map[string]string{
	"ESTJ": "Organized and decisive; takes charge of people and process to get concrete results.",
	"ESTP": "Energetic problem-solver; acts on facts in the moment and adapts fast.",
	"ESFJ": "Warm and dependable; builds harmony and keeps groups running smoothly.",
	"ESFP": "Enthusiastic and practical; brings people together around hands-on experiences.",
	"ENTJ": "Strategic leader; marshals logic and long-range plans to drive change.",
	"ENTP": "Inventive debater; thrives on new possibilities and challenging assumptions.",
	"ENFJ": "Persuasive mentor; reads people well and organizes them toward shared ideals.",
	"ENFP": "Imaginative free spirit; connects ideas and people with contagious energy.",
	"ISTJ": "Thorough and reliable; masters facts and follows through methodically.",
	"ISTP": "Quiet troubleshooter; understands how things work and fixes them efficiently.",
	"ISFJ": "Considerate protector; remembers details that matter and supports steadily.",
	"ISFP": "Gentle and adaptable; guided by personal values and present experience.",
	"INTJ": "Independent architect; builds long-range systems from first principles.",
	"INTP": "Analytical theorist; driven to find the underlying logic of everything.",
	"INFJ": "Insightful idealist; quietly organizes ideas and people around deep convictions.",
	"INFP": "Reflective idealist; loyal to inner values and open to possibility.",
}

const fallbackDescription = "A balanced profile that blends preferences across all four dimensions."

// Classify folds the chosen option deltas into four axis accumulators
// initialized at 50, clamps, and thresholds each axis at the midpoint.
// A choice index outside a scenario's option range is skipped; a choice list
// shorter than the scenario list simply scores fewer scenarios. Both fail
// open rather than erroring, so an empty response still yields the fixed
// neutral type.
func Classify(choices []int, scenarioList []Scenario) models.TypologyResult {
	extraversion := scoring.NewAccumulator()
	sensing := scoring.NewAccumulator()
	thinking := scoring.NewAccumulator()
	judging := scoring.NewAccumulator()

	for i, scenario := range scenarioList {
		if i >= len(choices) {
			break
		}
		choice := choices[i]
		if choice < 0 || choice >= len(scenario.Options) {
			continue
		}
		d := scenario.Options[choice].Deltas
		extraversion.Add(d.Extraversion)
		sensing.Add(d.Sensing)
		thinking.Add(d.Thinking)
		judging.Add(d.Judging)
	}

	result := models.TypologyResult{
		Extraversion: extraversion.Score(),
		Sensing:      sensing.Score(),
		Thinking:     thinking.Score(),
		Judging:      judging.Score(),
	}

	result.Type = typeCode(result)
	result.Description = Describe(result.Type)
	return result
}

// typeCode thresholds each axis at the midpoint, in fixed axis order E/I,
// S/N, T/F, J/P. The E, T and J axes use strict >50 so exactly 50 resolves
// to I, F and P; the sensing axis resolves 50 to S. A participant who
// answers nothing therefore maps deterministically to ISFP. This asymmetry
// is load-bearing: downstream consumers rely on the neutral type being ISFP.
func typeCode(r models.TypologyResult) string {
	code := ""
	if r.Extraversion > scoring.Neutral {
		code += "E"
	} else {
		code += "I"
	}
	if r.Sensing >= scoring.Neutral {
		code += "S"
	} else {
		code += "N"
	}
	if r.Thinking > scoring.Neutral {
		code += "T"
	} else {
		code += "F"
	}
	if r.Judging > scoring.Neutral {
		code += "J"
	} else {
		code += "P"
	}
	return code
}

// Describe looks up the canned description for a type code.
func Describe(code string) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return fallbackDescription
}

// VerifyScenarios checks the static scenario table at process start.
func VerifyScenarios(scenarioList []Scenario) error {
	if len(scenarioList) == 0 {
		return fmt.Errorf("scenario table is empty")
	}
	seen := make(map[string]bool, len(scenarioList))
	for _, s := range scenarioList {
		if s.ID == "" || s.Prompt == "" {
			return fmt.Errorf("scenario %q has empty id or prompt", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scenario id %q", s.ID)
		}
		seen[s.ID] = true
		for i, opt := range s.Options {
			if opt.Text == "" {
				return fmt.Errorf("scenario %q option %d has empty text", s.ID, i)
			}
		}
	}
	return nil
}
