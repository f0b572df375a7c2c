package diagnosis

import (
	"strings"

	"healthbridge/internal/model"
)

// emergencyKeywords are red-flag phrases scanned as case-insensitive
// substrings of the raw symptom text.
var emergencyKeywords = []string{
	"nyeri dada hebat",
	"sesak napas berat",
	"pingsan",
	"kejang",
	"tidak sadar",
	"pendarahan",
	"kecelakaan",
	"lumpuh",
	"stroke",
	"serangan jantung",
}

// EmergencyWarning is attached to responses flagged as emergencies.
const EmergencyWarning = "PERHATIAN: Gejala Anda mungkin memerlukan penanganan DARURAT! " +
	"Segera hubungi 119 atau pergi ke IGD rumah sakit terdekat!"

// IsEmergency reports whether the raw symptom text contains any red-flag
// phrase, or the matched disease (may be nil) belongs to the emergency
// category. The two checks are OR'd.
func IsEmergency(symptoms string, matched *model.Disease) bool {
	lower := strings.ToLower(symptoms)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return matched != nil && matched.Category == model.EmergencyCategory
}
