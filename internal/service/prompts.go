package service

import "fmt"

// Language instruction blocks. "th" selects the Thai block, anything
// else falls through to English.

const analysisLangTH = `IMPORTANT: You MUST respond entirely in Thai language (ภาษาไทย).
Use Thai for all explanations, descriptions, and interpretations.
Technical terms like GNSS, ITRF, mm/year can remain in English, but all sentences and descriptions must be in Thai.`

const analysisLangEN = "Please respond in English."

const summaryLangTH = `IMPORTANT: You MUST write the summary entirely in Thai language (ภาษาไทย).
Use simple Thai that non-technical users can understand easily.
Technical terms like GNSS, mm/year can stay in English, but the sentences must be in Thai.`

const summaryLangEN = "Please write the summary in English."

const stationSummaryLangTH = `IMPORTANT: Write entirely in Thai (ภาษาไทย). Use simple Thai.`

const stationSummaryLangEN = "Please write in English."

func analysisLang(language string) string {
	if language == "th" {
		return analysisLangTH
	}
	return analysisLangEN
}

func summaryLang(language string) string {
	if language == "th" {
		return summaryLangTH
	}
	return summaryLangEN
}

func stationSummaryLang(language string) string {
	if language == "th" {
		return stationSummaryLangTH
	}
	return stationSummaryLangEN
}

const visionPromptTemplate = `You are an expert geodetic engineer and GNSS data analyst.
Analyze this chart image in detail. It likely shows GNSS (Global Navigation Satellite System)
point displacement data.

%s

Please provide a comprehensive analysis covering:

1. **Chart Type & Components**: What type of chart is this? What are the axes, labels, and components shown?

2. **Displacement Analysis**:
   - Describe the displacement patterns for each component (East, North, Up/Vertical) if visible.
   - Identify any linear trends (magnitude and direction).
   - Note seasonal/periodic variations if present.
   - Highlight any anomalous points or sudden jumps.

3. **Station Information**: What station name, reference frame, or time period is shown?

4. **Interpretation**:
   - What does this displacement pattern suggest about ground movement?
   - Is there evidence of land subsidence, tectonic motion, or structural deformation?
   - What is the approximate rate of displacement per year?

5. **Data Quality**: Comment on the scatter/noise level and overall data quality.

Please be specific with numbers and measurements where visible.`

func visionPrompt(language string) string {
	return fmt.Sprintf(visionPromptTemplate, analysisLang(language))
}

const chartSummaryTemplate = `Based on the following technical analysis of a GNSS displacement chart,
create a concise, easy-to-understand summary for a non-technical user.
Explain what the chart shows and what it means in simple terms.

%s

Technical Analysis:
%s

Please write a 3-5 sentence summary that:
- Explains what the chart is measuring (ground/point movement)
- Highlights the key findings (direction and amount of movement)
- Explains any potential implications (e.g., subsidence risk, structural monitoring)
Keep it simple and informative.`

func chartSummaryPrompt(language, description string) string {
	return fmt.Sprintf(chartSummaryTemplate, summaryLang(language), description)
}

const stationAnalysisTemplate = `You are an expert geodetic engineer analyzing GNSS monitoring data from station %s.

Field definitions:
- de, dn, dh = displacement from initial coordinate in East, North, and Height (meters)
- sde, sdn, sdh = standard deviation of each displacement component (meters)
- pdop = Position Dilution of Precision (lower is better)
- no_satellite = number of satellites used

%s

%s

Analyze this data:
1. What is the displacement trend for East (de), North (dn), and Height (dh)?
2. Is there land subsidence (negative dh trend) or uplift?
3. What is the approximate displacement rate per year for each component?
4. Are there any anomalies or sudden jumps?
5. Comment on data quality based on S.D. values and PDOP.`

func stationAnalysisPrompt(language, statCode, digest string) string {
	return fmt.Sprintf(stationAnalysisTemplate, statCode, analysisLang(language), digest)
}

const stationSummaryTemplate = `Based on the following technical analysis of GNSS station data (station: %s),
create a concise, easy-to-understand summary for a non-technical user.

%s

Technical Analysis:
%s

Write a 3-5 sentence summary that:
- Explains what was measured (ground/point movement at this station)
- Highlights the key findings (direction and amount of movement)
- Explains any potential implications
Keep it simple and informative.`

func stationSummaryPrompt(language, statCode, description string) string {
	return fmt.Sprintf(stationSummaryTemplate, statCode, stationSummaryLang(language), description)
}
