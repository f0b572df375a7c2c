package model

import "time"

// PatientRecord is the append-only audit trail of triage requests. Exactly
// one record is written per diagnosis call, whether or not a disease matched.
type PatientRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;index"`
	Symptoms        string    `json:"symptoms" gorm:"type:text"`
	Diagnosis       string    `json:"diagnosis" gorm:"size:255"`
	Advice          string    `json:"advice" gorm:"type:text"`
	DiseaseName     string    `json:"disease_name,omitempty" gorm:"size:255"`
	DiseaseCategory string    `json:"disease_category,omitempty" gorm:"size:100"`
	Medicines       string    `json:"medicines,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
}
