package diagnosis

import (
	"fmt"
	"strings"
)

// fallbackRule maps symptom keywords to a canned label and advice. Rules are
// evaluated in order against the lowercased symptom text; the first rule with
// any matching keyword wins.
type fallbackRule struct {
	keywords []string
	label    string
	advice   string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"demam", "panas"},
		label:    "Demam (Viral Infection)",
		advice:   "Minum Paracetamol, kompres hangat, cek suhu berkala.",
	},
	{
		keywords: []string{"perut", "mual", "lambung"},
		label:    "Dispepsia / Maag",
		advice:   "Hindari makanan pedas/asam, makan teratur, minum obat lambung.",
	},
	{
		keywords: []string{"kepala", "pusing", "migrain"},
		label:    "Cephalgia (Sakit Kepala)",
		advice:   "Istirahat di ruang gelap, hindari layar HP, minum obat pereda nyeri.",
	},
	{
		keywords: []string{"gatal", "kulit", "merah"},
		label:    "Dermatitis / Alergi Kulit",
		advice:   "Jangan digaruk, gunakan bedak salisil atau salep gatal.",
	},
	{
		keywords: []string{"batuk", "pilek", "flu"},
		label:    "Common Cold (ISPA Ringan)",
		advice:   "Istirahat total, minum vitamin C, gunakan masker.",
	},
	{
		keywords: []string{"tulang", "nyeri", "pegal"},
		label:    "Myalgia (Nyeri Otot)",
		advice:   "Pijat ringan, gunakan krim otot panas, istirahat.",
	},
	{
		keywords: []string{"sesak", "napas", "mengi"},
		label:    "Asma / Gangguan Pernapasan",
		advice:   "Hindari pemicu, gunakan inhaler jika tersedia, segera ke dokter jika parah.",
	},
	{
		keywords: []string{"gula", "kencing", "haus"},
		label:    "Suspek Diabetes Mellitus",
		advice:   "Cek gula darah, kurangi konsumsi gula, konsultasi dokter.",
	},
	{
		keywords: []string{"darah tinggi", "hipertensi"},
		label:    "Hipertensi (Tekanan Darah Tinggi)",
		advice:   "Kurangi garam, olahraga ringan, hindari stres, cek tekanan darah rutin.",
	},
	{
		keywords: []string{"berputar", "vertigo"},
		label:    "Vertigo",
		advice:   "Istirahat, hindari gerakan mendadak, minum obat antivertigo.",
	},
	{
		keywords: []string{"gigi", "ngilu", "gusi"},
		label:    "Sakit Gigi",
		advice:   "Kumur air garam hangat, minum obat pereda nyeri, segera ke dokter gigi.",
	},
	{
		keywords: []string{"diare", "mencret", "bab encer"},
		label:    "Diare",
		advice:   "Minum oralit, hindari makanan berminyak, banyak minum air putih.",
	},
	{
		keywords: []string{"sariawan", "luka mulut"},
		label:    "Sariawan",
		advice:   "Oleskan obat sariawan, kumur antiseptik, konsumsi vitamin C.",
	},
	{
		keywords: []string{"mata", "belekan"},
		label:    "Sakit Mata (Konjungtivitis)",
		advice:   "Kompres dingin, gunakan tetes mata, jangan mengucek mata.",
	},
	{
		keywords: []string{"telinga", "pendengaran"},
		label:    "Sakit Telinga (Otitis)",
		advice:   "Kompres hangat, jangan mengorek telinga, segera ke dokter THT.",
	},
}

// Fallback resolves symptoms against the local keyword rules. It always
// produces a result; the catch-all fires when no rule matches.
func Fallback(symptoms string) Consultation {
	lower := strings.ToLower(symptoms)
	for _, rule := range fallbackRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return Consultation{Label: rule.label, Advice: rule.advice, Source: SourceFallback}
			}
		}
	}
	return Consultation{
		Label: "Gejala Umum / Kelelahan",
		Advice: fmt.Sprintf(
			"Keluhan '%s' membutuhkan observasi lebih lanjut. Sarankan istirahat total dan kunjungi dokter jika berlanjut 3 hari.",
			symptoms,
		),
		Source: SourceFallback,
	}
}
