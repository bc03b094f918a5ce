// internal/engine/cognitive/bank.go
package cognitive

import (
	"fmt"

	"assessment-engine/internal/models"
)

// The bank is package data loaded once through Bank(). Selection is
// deterministic: filtering preserves insertion order and no shuffling
// happens anywhere, so a given education level always sees the same
// questions in the same order.

var allLevels = []models.EducationLevel{
	models.LevelPrimary, models.LevelSecondary, models.LevelALevel,
	models.LevelUndergraduate, models.LevelMasters, models.LevelPhD,
}

var upperLevels = []models.EducationLevel{
	models.LevelALevel, models.LevelUndergraduate, models.LevelMasters, models.LevelPhD,
}

var schoolLevels = []models.EducationLevel{
	models.LevelPrimary, models.LevelSecondary, models.LevelALevel,
}

var postSecondary = []models.EducationLevel{
	models.LevelSecondary, models.LevelALevel,
	models.LevelUndergraduate, models.LevelMasters, models.LevelPhD,
}

var bank = []models.Question{
	// --- logical ---
	{
		ID: "log-01", Category: models.CategoryLogical, Difficulty: models.DifficultyEasy,
		Prompt:         "All roses are flowers. Some flowers fade quickly. Which statement must be true?",
		Options:        []string{"All roses fade quickly", "Some roses are flowers", "All flowers are roses", "No roses fade quickly"},
		Correct:        models.ChoiceAnswer("Some roses are flowers"),
		Explanation:    "Only the subset relation between roses and flowers is guaranteed.",
		EligibleLevels: allLevels,
	},
	{
		ID: "log-02", Category: models.CategoryLogical, Difficulty: models.DifficultyEasy,
		Prompt:         "Which shape completes the sequence: circle, square, circle, square, ... ?",
		Options:        []string{"triangle", "circle", "square", "pentagon"},
		Correct:        models.ChoiceAnswer("circle"),
		Explanation:    "The sequence alternates between circle and square.",
		EligibleLevels: schoolLevels,
	},
	{
		ID: "log-03", Category: models.CategoryLogical, Difficulty: models.DifficultyMedium,
		Prompt:         "If no A is B, and all C are B, which follows?",
		Options:        []string{"No C is A", "All A are C", "Some C are A", "No B is C"},
		Correct:        models.ChoiceAnswer("No C is A"),
		Explanation:    "C sits entirely inside B, which is disjoint from A.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "log-04", Category: models.CategoryLogical, Difficulty: models.DifficultyMedium,
		Prompt:         "Ana is taller than Ben. Ben is taller than Cara. Dan is shorter than Cara. Who is second tallest?",
		Options:        []string{"Ana", "Ben", "Cara", "Dan"},
		Correct:        models.ChoiceAnswer("Ben"),
		Explanation:    "Ordering is Ana > Ben > Cara > Dan.",
		EligibleLevels: allLevels,
	},
	{
		ID: "log-05", Category: models.CategoryLogical, Difficulty: models.DifficultyHard,
		Prompt:         "A statement reads: 'This label has exactly one false claim.' If the label carries two claims and the first is true, the second is:",
		Options:        []string{"true", "false", "undetermined", "both"},
		Correct:        models.ChoiceAnswer("false"),
		Explanation:    "Exactly one claim is false and it cannot be the first.",
		EligibleLevels: upperLevels,
	},
	{
		ID: "log-06", Category: models.CategoryLogical, Difficulty: models.DifficultyMedium,
		Prompt:         "Which number continues the pattern: 2, 6, 12, 20, 30, ... ?",
		Options:        nil,
		Correct:        models.NumericAnswer(42),
		Explanation:    "Differences grow by 2: +4, +6, +8, +10, +12.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "log-07", Category: models.CategoryLogical, Difficulty: models.DifficultyHard,
		Prompt:         "In a room of five people every pair shakes hands once. How many handshakes occur?",
		Options:        nil,
		Correct:        models.NumericAnswer(10),
		Explanation:    "C(5,2) = 10.",
		EligibleLevels: upperLevels,
	},

	// --- numerical ---
	{
		ID: "num-01", Category: models.CategoryNumerical, Difficulty: models.DifficultyEasy,
		Prompt:         "What is 15% of 200?",
		Options:        nil,
		Correct:        models.NumericAnswer(30),
		Explanation:    "0.15 * 200 = 30.",
		EligibleLevels: allLevels,
	},
	{
		ID: "num-02", Category: models.CategoryNumerical, Difficulty: models.DifficultyEasy,
		Prompt:         "A shirt costs 40 and is discounted by a quarter. What is the new price?",
		Options:        nil,
		Correct:        models.NumericAnswer(30),
		Explanation:    "40 - 10 = 30.",
		EligibleLevels: schoolLevels,
	},
	{
		ID: "num-03", Category: models.CategoryNumerical, Difficulty: models.DifficultyMedium,
		Prompt:         "A car travels 180 km in 2.5 hours. What is its average speed in km/h?",
		Options:        nil,
		Correct:        models.NumericAnswer(72),
		Explanation:    "180 / 2.5 = 72.",
		EligibleLevels: allLevels,
	},
	{
		ID: "num-04", Category: models.CategoryNumerical, Difficulty: models.DifficultyMedium,
		Prompt:         "If 3x + 7 = 22, what is x?",
		Options:        nil,
		Correct:        models.NumericAnswer(5),
		Explanation:    "3x = 15, so x = 5.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "num-05", Category: models.CategoryNumerical, Difficulty: models.DifficultyHard,
		Prompt:         "An investment grows 10% per year. By what factor has it grown after two years?",
		Options:        nil,
		Correct:        models.NumericAnswer(1.21),
		Explanation:    "1.1 squared is 1.21.",
		EligibleLevels: upperLevels,
	},
	{
		ID: "num-06", Category: models.CategoryNumerical, Difficulty: models.DifficultyMedium,
		Prompt:         "Which fraction is largest?",
		Options:        []string{"3/5", "5/8", "2/3", "7/12"},
		Correct:        models.ChoiceAnswer("2/3"),
		Explanation:    "2/3 ≈ 0.667 exceeds the others.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "num-07", Category: models.CategoryNumerical, Difficulty: models.DifficultyHard,
		Prompt:         "The mean of four numbers is 12. Three of them are 9, 14 and 11. What is the fourth?",
		Options:        nil,
		Correct:        models.NumericAnswer(14),
		Explanation:    "48 - 34 = 14.",
		EligibleLevels: upperLevels,
	},

	// --- verbal ---
	{
		ID: "ver-01", Category: models.CategoryVerbal, Difficulty: models.DifficultyEasy,
		Prompt:         "Which word is closest in meaning to 'rapid'?",
		Options:        []string{"slow", "quick", "quiet", "heavy"},
		Correct:        models.ChoiceAnswer("quick"),
		Explanation:    "Rapid means fast.",
		EligibleLevels: allLevels,
	},
	{
		ID: "ver-02", Category: models.CategoryVerbal, Difficulty: models.DifficultyEasy,
		Prompt:         "Pick the word that does not belong.",
		Options:        []string{"apple", "banana", "carrot", "cherry"},
		Correct:        models.ChoiceAnswer("carrot"),
		Explanation:    "Carrot is the only vegetable.",
		EligibleLevels: schoolLevels,
	},
	{
		ID: "ver-03", Category: models.CategoryVerbal, Difficulty: models.DifficultyMedium,
		Prompt:         "'Book is to library as painting is to ...'",
		Options:        []string{"frame", "gallery", "artist", "canvas"},
		Correct:        models.ChoiceAnswer("gallery"),
		Explanation:    "A gallery houses paintings the way a library houses books.",
		EligibleLevels: allLevels,
	},
	{
		ID: "ver-04", Category: models.CategoryVerbal, Difficulty: models.DifficultyMedium,
		Prompt:         "Which word is the antonym of 'scarce'?",
		Options:        []string{"rare", "abundant", "meagre", "sparse"},
		Correct:        models.ChoiceAnswer("abundant"),
		Explanation:    "Scarce and abundant are opposites.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "ver-05", Category: models.CategoryVerbal, Difficulty: models.DifficultyHard,
		Prompt:         "Choose the sentence with no grammatical error.",
		Options:        []string{"Neither of the answers were correct.", "Neither of the answers was correct.", "Neither of the answer were correct.", "Neither answers was correct."},
		Correct:        models.ChoiceAnswer("Neither of the answers was correct."),
		Explanation:    "'Neither' takes a singular verb.",
		EligibleLevels: upperLevels,
	},
	{
		ID: "ver-06", Category: models.CategoryVerbal, Difficulty: models.DifficultyHard,
		Prompt:         "'Ephemeral' most nearly means:",
		Options:        []string{"eternal", "fleeting", "fragile", "luminous"},
		Correct:        models.ChoiceAnswer("fleeting"),
		Explanation:    "Ephemeral means lasting a very short time.",
		EligibleLevels: upperLevels,
	},

	// --- memory ---
	{
		ID: "mem-01", Category: models.CategoryMemory, Difficulty: models.DifficultyEasy,
		Prompt:         "Recall the sequence shown earlier: 4, 9, 2. What was the middle number?",
		Options:        nil,
		Correct:        models.NumericAnswer(9),
		Explanation:    "The sequence was 4, 9, 2.",
		EligibleLevels: allLevels,
	},
	{
		ID: "mem-02", Category: models.CategoryMemory, Difficulty: models.DifficultyMedium,
		Prompt:         "The word list was: river, candle, stone, orchard. Which word appeared third?",
		Options:        []string{"river", "candle", "stone", "orchard"},
		Correct:        models.ChoiceAnswer("stone"),
		Explanation:    "Stone was the third word shown.",
		EligibleLevels: allLevels,
	},
	{
		ID: "mem-03", Category: models.CategoryMemory, Difficulty: models.DifficultyMedium,
		Prompt:         "Recall the digit string 7 3 8 1 5 in reverse. What is the second digit of the reversed string?",
		Options:        nil,
		Correct:        models.NumericAnswer(1),
		Explanation:    "Reversed: 5 1 8 3 7.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "mem-04", Category: models.CategoryMemory, Difficulty: models.DifficultyHard,
		Prompt:         "The pairs shown were cat-window, tree-spoon, lamp-road. Which word was paired with 'tree'?",
		Options:        []string{"window", "spoon", "road", "lamp"},
		Correct:        models.ChoiceAnswer("spoon"),
		Explanation:    "tree-spoon was the second pair.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "mem-05", Category: models.CategoryMemory, Difficulty: models.DifficultyHard,
		Prompt:         "Of the six symbols flashed, how many were arrows?",
		Options:        nil,
		Correct:        models.NumericAnswer(2),
		Explanation:    "Two of the six symbols were arrows.",
		EligibleLevels: upperLevels,
	},

	// --- processing ---
	{
		ID: "pro-01", Category: models.CategoryProcessing, Difficulty: models.DifficultyEasy,
		Prompt:         "Count the letter 'e' in: 'red pandas sleep deeply'.",
		Options:        nil,
		Correct:        models.NumericAnswer(5),
		Explanation:    "red(1) sleep(2) deeply(2).",
		EligibleLevels: allLevels,
	},
	{
		ID: "pro-02", Category: models.CategoryProcessing, Difficulty: models.DifficultyEasy,
		Prompt:         "Which pair matches exactly?",
		Options:        []string{"B7TQ / B7TO", "X2HM / X2HM", "L9KD / L9KB", "R4VN / R4WN"},
		Correct:        models.ChoiceAnswer("X2HM / X2HM"),
		Explanation:    "Only the second pair is identical.",
		EligibleLevels: allLevels,
	},
	{
		ID: "pro-03", Category: models.CategoryProcessing, Difficulty: models.DifficultyMedium,
		Prompt:         "How many odd numbers appear in: 12, 7, 44, 9, 31, 60, 8?",
		Options:        nil,
		Correct:        models.NumericAnswer(3),
		Explanation:    "7, 9 and 31 are odd.",
		EligibleLevels: allLevels,
	},
	{
		ID: "pro-04", Category: models.CategoryProcessing, Difficulty: models.DifficultyMedium,
		Prompt:         "Apply the rule 'replace every A with 1' to 'BANANA'. How many characters change?",
		Options:        nil,
		Correct:        models.NumericAnswer(3),
		Explanation:    "BANANA has three A's.",
		EligibleLevels: postSecondary,
	},
	{
		ID: "pro-05", Category: models.CategoryProcessing, Difficulty: models.DifficultyHard,
		Prompt:         "Scanning the grid row by row, which symbol appeared most often?",
		Options:        []string{"◆", "●", "▲", "■"},
		Correct:        models.ChoiceAnswer("●"),
		Explanation:    "● appears five times, more than any other symbol.",
		EligibleLevels: upperLevels,
	},
}

// Bank returns the full immutable question bank in insertion order. Callers
// must not mutate the returned slice.
func Bank() []models.Question {
	return bank
}

// VerifyBank checks the static table's integrity at process start: unique
// IDs, recognized categories, non-empty prompts, a choice answer that is one
// of its options, and at least one eligible level per question. A corrupt
// table fails the process before any session is scored.
func VerifyBank(questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}

	seen := make(map[string]bool, len(questions))
	valid := make(map[models.CognitiveCategory]bool, len(models.CognitiveCategories))
	for _, c := range models.CognitiveCategories {
		valid[c] = true
	}

	for _, q := range questions {
		if q.ID == "" || q.Prompt == "" {
			return fmt.Errorf("question %q has empty id or prompt", q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if !valid[q.Category] {
			return fmt.Errorf("question %q has unknown category %q", q.ID, q.Category)
		}
		if len(q.EligibleLevels) == 0 {
			return fmt.Errorf("question %q has no eligible education levels", q.ID)
		}

		switch q.Correct.Kind {
		case models.AnswerChoice:
			found := false
			for _, opt := range q.Options {
				if opt == q.Correct.Choice {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("question %q: correct answer not among options", q.ID)
			}
		case models.AnswerNumeric:
			if len(q.Options) != 0 {
				return fmt.Errorf("question %q: numeric question must not carry options", q.ID)
			}
		default:
			return fmt.Errorf("question %q has unknown answer kind %q", q.ID, q.Correct.Kind)
		}
	}

	return nil
}
