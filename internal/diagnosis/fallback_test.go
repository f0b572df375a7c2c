package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthbridge/internal/model"
)

func TestFallback_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
		label    string
	}{
		{
			name:     "fever keyword",
			symptoms: "badan panas sejak kemarin",
			label:    "Demam (Viral Infection)",
		},
		{
			name:     "stomach keyword",
			symptoms: "mual dan perih di lambung",
			label:    "Dispepsia / Maag",
		},
		{
			name:     "earlier rule wins when several match",
			symptoms: "demam dan batuk pilek", // fever rule precedes the cold rule
			label:    "Demam (Viral Infection)",
		},
		{
			name:     "case insensitive",
			symptoms: "KEPALA saya PUSING",
			label:    "Cephalgia (Sakit Kepala)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.symptoms)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, SourceFallback, got.Source)
			assert.NotEmpty(t, got.Advice)
		})
	}
}

func TestFallback_CatchAllEmbedsSymptoms(t *testing.T) {
	got := Fallback("sulit tidur belakangan ini")

	assert.Equal(t, "Gejala Umum / Kelelahan", got.Label)
	assert.Contains(t, got.Advice, "sulit tidur belakangan ini")
}

func TestSplitAdvisorText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		label  string
		advice string
	}{
		{
			name:   "label and advice split on first period",
			text:   "Kemungkinan Demam. Istirahat cukup dan minum Paracetamol.",
			label:  "Kemungkinan Demam",
			advice: "Istirahat cukup dan minum Paracetamol",
		},
		{
			name:   "no period keeps full text as advice",
			text:   "Kemungkinan flu biasa",
			label:  "Kemungkinan flu biasa",
			advice: "Kemungkinan flu biasa",
		},
		{
			name:   "tiny remainder falls back to full text",
			text:   "Flu. Ok.",
			label:  "Flu",
			advice: "Flu. Ok.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAdvisorText(tt.text)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.advice, got.Advice)
			assert.Equal(t, SourceAdvisor, got.Source)
		})
	}
}

func TestIsEmergency(t *testing.T) {
	emergencyDisease := &model.Disease{Name: "Serangan Jantung (DARURAT)", Category: model.EmergencyCategory}
	normalDisease := &model.Disease{Name: "Demam", Category: "Infeksi"}

	tests := []struct {
		name     string
		symptoms string
		matched  *model.Disease
		want     bool
	}{
		{"red flag phrase", "tiba-tiba nyeri dada hebat", nil, true},
		{"red flag is case insensitive", "saya PINGSAN tadi pagi", nil, true},
		{"emergency category without red flag", "dada tidak nyaman", emergencyDisease, true},
		{"normal disease and mild symptoms", "badan hangat", normalDisease, false},
		{"no match and mild symptoms", "badan hangat", nil, false},
		{"partial phrase does not trigger", "nyeri ringan di dada", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmergency(tt.symptoms, tt.matched))
		})
	}
}
