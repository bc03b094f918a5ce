// internal/engine/typology/classifier_test.go
package typology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// singleAxisScenarios isolates one scenario per axis so tests can push a
// single dimension without side effects on the others.
func singleAxisScenarios() []Scenario {
	return []Scenario{
		{
			ID: "t-e", Prompt: "extraversion probe",
			Options: [4]Option{
				{"strong E", AxisDeltas{Extraversion: 10}},
				{"strong I", AxisDeltas{Extraversion: -10}},
				{"neutral", AxisDeltas{}},
				{"neutral", AxisDeltas{}},
			},
		},
		{
			ID: "t-s", Prompt: "sensing probe",
			Options: [4]Option{
				{"strong S", AxisDeltas{Sensing: 10}},
				{"strong N", AxisDeltas{Sensing: -10}},
				{"neutral", AxisDeltas{}},
				{"neutral", AxisDeltas{}},
			},
		},
		{
			ID: "t-t", Prompt: "thinking probe",
			Options: [4]Option{
				{"strong T", AxisDeltas{Thinking: 10}},
				{"strong F", AxisDeltas{Thinking: -10}},
				{"neutral", AxisDeltas{}},
				{"neutral", AxisDeltas{}},
			},
		},
		{
			ID: "t-j", Prompt: "judging probe",
			Options: [4]Option{
				{"strong J", AxisDeltas{Judging: 10}},
				{"strong P", AxisDeltas{Judging: -10}},
				{"neutral", AxisDeltas{}},
				{"neutral", AxisDeltas{}},
			},
		},
	}
}

// ==========================
// Classification
// ==========================

func TestClassify_NeutralDefaultsToISFP(t *testing.T) {
	result := Classify(nil, Scenarios())

	assert.Equal(t, 50, result.Extraversion)
	assert.Equal(t, 50, result.Sensing)
	assert.Equal(t, 50, result.Thinking)
	assert.Equal(t, 50, result.Judging)
	assert.Equal(t, "ISFP", result.Type)
	assert.Equal(t, descriptions["ISFP"], result.Description)
}

func TestClassify_TypeCodes(t *testing.T) {
	tests := []struct {
		name     string
		choices  []int
		expected string
	}{
		{"all first options", []int{0, 0, 0, 0}, "ESTJ"},
		{"all second options", []int{1, 1, 1, 1}, "INFP"},
		{"mixed E-N-T-P", []int{0, 1, 0, 1}, "ENTP"},
		{"mixed I-S-F-J", []int{1, 0, 1, 0}, "ISFJ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.choices, singleAxisScenarios())
			assert.Equal(t, tt.expected, result.Type)
		})
	}
}

func TestClassify_AxisScoresClampTo0100(t *testing.T) {
	// Repeating the same extreme scenario drives the accumulator far past
	// the bounds; final scores must still land inside [0,100].
	many := make([]Scenario, 20)
	for i := range many {
		many[i] = singleAxisScenarios()[0]
	}
	choices := make([]int, 20)

	result := Classify(choices, many)
	assert.Equal(t, 100, result.Extraversion)

	for i := range choices {
		choices[i] = 1
	}
	result = Classify(choices, many)
	assert.Equal(t, 0, result.Extraversion)
}

func TestClassify_ShortChoiceListFailsOpen(t *testing.T) {
	// Only the first scenario is answered; the rest score nothing.
	result := Classify([]int{0}, singleAxisScenarios())
	assert.Equal(t, "ESFP", result.Type)
}

func TestClassify_OutOfRangeChoiceSkipped(t *testing.T) {
	result := Classify([]int{7, -1, 0, 0}, singleAxisScenarios())
	// Scenarios 1 and 2 are skipped; thinking and judging still move.
	assert.Equal(t, 50, result.Extraversion)
	assert.Equal(t, 50, result.Sensing)
	assert.Equal(t, 60, result.Thinking)
	assert.Equal(t, 60, result.Judging)
}

func TestClassify_Determinism(t *testing.T) {
	choices := []int{0, 2, 1, 3, 0, 1, 2, 0, 3, 1}
	first := Classify(choices, Scenarios())
	second := Classify(choices, Scenarios())
	assert.Equal(t, first, second)
}

// ==========================
// Description Table
// ==========================

func TestDescribe_CoversAllSixteenTypes(t *testing.T) {
	letters := [][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}}
	var codes []string
	for _, a := range letters[0] {
		for _, b := range letters[1] {
			for _, c := range letters[2] {
				for _, d := range letters[3] {
					codes = append(codes, a+b+c+d)
				}
			}
		}
	}

	require.Len(t, codes, 16)
	for _, code := range codes {
		assert.NotEqual(t, fallbackDescription, Describe(code), "missing description for %s", code)
	}
}

func TestDescribe_UnmappedCodeFallsBack(t *testing.T) {
	assert.Equal(t, fallbackDescription, Describe("XXXX"))
}

// ==========================
// Scenario Table
// ==========================

func TestVerifyScenarios_BuiltinTableIsValid(t *testing.T) {
	require.NoError(t, VerifyScenarios(Scenarios()))
}

func TestVerifyScenarios_Failures(t *testing.T) {
	assert.Error(t, VerifyScenarios(nil))

	dup := []Scenario{singleAxisScenarios()[0], singleAxisScenarios()[0]}
	assert.Error(t, VerifyScenarios(dup))
}
