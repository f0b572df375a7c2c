package model

// Disease is a reference-data record describing a condition the triage
// matcher can resolve symptoms to. Rows are seeded once and never mutated.
type Disease struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Category    string `json:"category" gorm:"size:100;index"`
	Description string `json:"description" gorm:"type:text"`
	// Symptoms is a comma-separated keyword list, e.g. "demam, menggigil, sakit kepala".
	Symptoms  string `json:"symptoms" gorm:"type:text"`
	Treatment string `json:"treatment" gorm:"type:text"`
	Medicines string `json:"medicines" gorm:"type:text"`
	ImageURL  string `json:"image_url" gorm:"size:255"`
}

// EmergencyCategory marks diseases whose match alone flags an emergency.
const EmergencyCategory = "Darurat"
