package diagnosis

import (
	"strings"

	"healthbridge/internal/model"
)

// MatchThreshold is the minimum score for a disease match to be accepted:
// at least two weak keyword hits, or a name hit plus one keyword hit.
const MatchThreshold = 4

// Match scores every catalog disease against the diagnosis label and raw
// symptom text and returns the best one with its score, or nil when no
// disease reaches MatchThreshold.
//
// Scoring per disease:
//   - +10 when the disease name and the label contain each other
//     (case-insensitive, either direction);
//   - for every (symptom token, disease keyword) pair with token length > 3:
//     +2 when one is a substring of the other, else +1 when their first four
//     characters match exactly. A pair contributes at most once.
//
// Ties keep the first disease in catalog order.
func Match(label, symptoms string, diseases []model.Disease) (*model.Disease, int) {
	labelLower := strings.ToLower(label)

	var tokens []string
	for _, w := range strings.Fields(strings.ToLower(symptoms)) {
		tokens = append(tokens, strings.TrimSpace(w))
	}

	var best *model.Disease
	bestScore := 0

	for i := range diseases {
		disease := &diseases[i]
		score := 0

		nameLower := strings.ToLower(disease.Name)
		if strings.Contains(labelLower, nameLower) || strings.Contains(nameLower, labelLower) {
			score += 10
		}

		for _, raw := range strings.Split(disease.Symptoms, ",") {
			keyword := strings.ToLower(strings.TrimSpace(raw))
			for _, token := range tokens {
				if len(token) <= 3 {
					continue
				}
				if strings.Contains(keyword, token) || strings.Contains(token, keyword) {
					score += 2
				} else if len(keyword) >= 4 && token[:4] == keyword[:4] {
					score += 1
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = disease
		}
	}

	if bestScore < MatchThreshold {
		return nil, bestScore
	}
	return best, bestScore
}
