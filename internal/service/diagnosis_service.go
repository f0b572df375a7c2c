package service

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"healthbridge/internal/diagnosis"
	"healthbridge/internal/errors"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

// Advisor produces free-text diagnosis and advice for a patient's symptoms.
type Advisor interface {
	Consult(ctx context.Context, patientName, symptoms string) (string, error)
}

// DiagnosisResult is the full outcome of one triage call.
type DiagnosisResult struct {
	RecordID  uint                      `json:"record_id"`
	Patient   string                    `json:"patient"`
	Symptoms  string                    `json:"symptoms"`
	Diagnosis string                    `json:"diagnosis"`
	Advice    string                    `json:"advice"`
	Source    diagnosis.Source          `json:"source"`
	Emergency bool                      `json:"emergency"`
	Warning   string                    `json:"warning,omitempty"`
	Disease   *model.Disease            `json:"disease,omitempty"`
	Score     int                       `json:"match_score"`
	Referral  *diagnosis.DoctorReferral `json:"referral,omitempty"`
}

// DiagnosisService runs the triage pipeline and serves the consultation log.
type DiagnosisService interface {
	Diagnose(ctx context.Context, patientName, symptoms string) (*DiagnosisResult, error)
	GetRecord(ctx context.Context, id uint) (*model.PatientRecord, error)
	ListRecords(ctx context.Context) ([]model.PatientRecord, error)
	SearchRecords(ctx context.Context, q string) ([]model.PatientRecord, error)
}

type diagnosisService struct {
	advisor  Advisor
	diseases repository.DiseaseRepository
	patients repository.PatientRepository
	logger   zerolog.Logger
}

// NewDiagnosisService creates a new diagnosis service.
func NewDiagnosisService(
	advisor Advisor,
	diseases repository.DiseaseRepository,
	patients repository.PatientRepository,
	logger zerolog.Logger,
) DiagnosisService {
	return &diagnosisService{
		advisor:  advisor,
		diseases: diseases,
		patients: patients,
		logger:   logger,
	}
}

// Diagnose runs the full pipeline: advisor (one attempt) or local fallback
// rules for the label and advice, then the catalog matcher, then the
// emergency check. Exactly one patient record is written per call, matched
// or not, and a failed write fails the call.
func (s *diagnosisService) Diagnose(ctx context.Context, patientName, symptoms string) (*DiagnosisResult, error) {
	consultation := s.consult(ctx, patientName, symptoms)

	catalog, err := s.diseases.List(ctx)
	if err != nil {
		return nil, err
	}
	matched, score := diagnosis.Match(consultation.Label, symptoms, catalog)

	emergency := diagnosis.IsEmergency(symptoms, matched)

	record := &model.PatientRecord{
		Name:      patientName,
		Symptoms:  symptoms,
		Diagnosis: consultation.Label,
		Advice:    consultation.Advice,
	}
	if matched != nil {
		record.DiseaseName = matched.Name
		record.DiseaseCategory = matched.Category
		record.Medicines = matched.Medicines
	}
	if err := s.patients.Create(ctx, record); err != nil {
		return nil, err
	}

	result := &DiagnosisResult{
		RecordID:  record.ID,
		Patient:   patientName,
		Symptoms:  symptoms,
		Diagnosis: consultation.Label,
		Advice:    consultation.Advice,
		Source:    consultation.Source,
		Emergency: emergency,
		Disease:   matched,
		Score:     score,
	}
	if emergency {
		result.Warning = diagnosis.EmergencyWarning
	}
	if matched == nil {
		referral := diagnosis.NewDoctorReferral()
		result.Referral = &referral
	}
	return result, nil
}

// consult tries the advisor once and falls back to the local rules on any
// failure. The fallback never errors, so neither does this.
func (s *diagnosisService) consult(ctx context.Context, patientName, symptoms string) diagnosis.Consultation {
	text, err := s.advisor.Consult(ctx, patientName, symptoms)
	if err != nil {
		s.logger.Warn().Err(err).Msg("advisor unavailable, using fallback rules")
		return diagnosis.Fallback(symptoms)
	}
	return diagnosis.SplitAdvisorText(text)
}

// GetRecord retrieves one consultation record.
func (s *diagnosisService) GetRecord(ctx context.Context, id uint) (*model.PatientRecord, error) {
	record, err := s.patients.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPatientNotFound
		}
		return nil, err
	}
	return record, nil
}

// ListRecords returns the consultation log, newest first.
func (s *diagnosisService) ListRecords(ctx context.Context) ([]model.PatientRecord, error) {
	return s.patients.List(ctx)
}

// SearchRecords matches q against patient name, diagnosis, and disease name.
func (s *diagnosisService) SearchRecords(ctx context.Context, q string) ([]model.PatientRecord, error) {
	return s.patients.Search(ctx, q)
}
