package mentor

import "fmt"

const reviewSystemPrompt = "You are a world-class WOSTEP instructor with 40 years of experience at Vacheron Constantin."

const deepDiveSystemPrompt = "You are the world's leading horological historian and master watchmaker. " +
	"Your goal is to provide information as dense and valuable as a 200-page textbook chapter " +
	"in a concise but deeply technical summary."

func buildReviewPrompt(entryText string, phase int) string {
	return fmt.Sprintf(`As a Master Watchmaker, review this student's homework entry for Phase %d: "%s". `+
		`Provide constructive, highly technical feedback focusing on microns, precision, and traditional Swiss standards. `+
		`Keep it encouraging but rigorous.`, phase, entryText)
}

func buildDeepDivePrompt(topic string) string {
	return fmt.Sprintf(`Provide an EXHAUSTIVE technical deep dive on the topic of "%s".

Structure your response as follows:
1. Historical Context (The origins of this mechanical principle).
2. Material Science (Alloys, hardening, and tempering required).
3. Mathematical Theory (Include formulas like T=Fr, Cubic Strength, or Gear Ratios).
4. Bench Implementation (Specific tools, Bergeon reference numbers, and Moebius lubrication types).
5. Master's Secrets (Micron-level adjustments and troubleshooting common faults).

Write at least 1000 words. Be incredibly detailed. Use professional horological terminology (e.g., endshake, sideplay, Ra polish, epilame, draw, drop).`, topic)
}
