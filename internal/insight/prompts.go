package insight

import "sladrehank/internal/engine"

// Fixed analysis instructions, one per dashboard view. The serialized data
// table is appended after the instruction to form the full prompt.
const (
	overallInstruction = `Analyse the following data showing total unemployment in Norway (age 15-74) from 2015 to 2024.
Summarise the main trend in 2-3 sentences. Mention the overall direction (rising/falling/stable) and any significant peaks or troughs in the period.
Keep the answer brief and aimed at a general audience.`

	genderInstruction = `Analyse the unemployment figures for men and women (age 15-74) in Norway from 2015 to 2024 in the data below.
Summarise the main differences in trends between the genders in 2-3 sentences.
Was unemployment generally higher for men or for women? Did the gap change noticeably over time?
Keep the answer brief and aimed at a general audience.`

	ageInstruction = `Analyse the unemployment data for the age groups 15-24, 25-54 and 55-74 for both sexes combined in Norway from 2015 to 2024.
Summarise in 3-4 sentences: which age groups generally had the highest and lowest unemployment?
Which groups saw the largest relative changes over the period, and are there any notable peaks or troughs for individual groups?
Keep the answer brief and aimed at a general audience.`

	ageMenInstruction = `Analyse the unemployment data for the age groups 15-24, 25-54 and 55-74 specifically for men in Norway from 2015 to 2024.
Summarise in 2-3 sentences: which age groups had the highest and lowest unemployment among men?
Identify any significant trends or changes for men in these groups over the period.
Keep the answer brief and aimed at a general audience.`

	ageWomenInstruction = `Analyse the unemployment data for the age groups 15-24, 25-54 and 55-74 specifically for women in Norway from 2015 to 2024.
Summarise in 2-3 sentences: which age groups had the highest and lowest unemployment among women?
Identify any significant trends or changes for women in these groups over the period.
Keep the answer brief and aimed at a general audience.`

	genericInstruction = `Analyse the following unemployment data for Norway and summarise the main trend in 2-3 sentences.
Keep the answer brief and aimed at a general audience.`
)

// InstructionFor returns the fixed instruction for a view name.
func InstructionFor(viewName string) string {
	switch viewName {
	case engine.ViewOverall:
		return overallInstruction
	case engine.ViewGender:
		return genderInstruction
	case engine.ViewAge:
		return ageInstruction
	case engine.ViewAgeMen:
		return ageMenInstruction
	case engine.ViewAgeWomen:
		return ageWomenInstruction
	default:
		return genericInstruction
	}
}
