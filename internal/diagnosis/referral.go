package diagnosis

// SpecialistOption is one entry of the doctor-referral payload returned when
// no disease matched.
type SpecialistOption struct {
	Specialist string `json:"specialist"`
	For        string `json:"for"`
}

// DoctorReferral is the fixed best-effort payload for unmatched symptoms.
type DoctorReferral struct {
	Message           string             `json:"message"`
	Advice            []string           `json:"advice"`
	SpecialistOptions []SpecialistOption `json:"specialist_options"`
}

// NewDoctorReferral returns the static referral recommendation.
func NewDoctorReferral() DoctorReferral {
	return DoctorReferral{
		Message: "Berdasarkan gejala yang Anda sampaikan, kami tidak dapat memberikan diagnosa yang akurat. " +
			"Untuk keamanan Anda, silakan konsultasi dengan dokter profesional.",
		Advice: []string{
			"Kunjungi dokter umum atau klinik terdekat untuk pemeriksaan lebih lanjut",
			"Catat semua gejala yang Anda rasakan untuk disampaikan ke dokter",
			"Jika gejala memburuk, segera ke IGD rumah sakit",
			"Anda juga dapat menghubungi hotline kesehatan: 119 ext 8",
		},
		SpecialistOptions: []SpecialistOption{
			{Specialist: "Dokter Umum", For: "Pemeriksaan awal dan rujukan"},
			{Specialist: "Dokter Spesialis Penyakit Dalam", For: "Keluhan organ dalam"},
			{Specialist: "Dokter Spesialis Saraf", For: "Keluhan neurologis"},
			{Specialist: "Dokter Spesialis Kulit", For: "Keluhan kulit"},
			{Specialist: "Dokter Spesialis THT", For: "Keluhan telinga, hidung, tenggorokan"},
			{Specialist: "Dokter Spesialis Mata", For: "Keluhan penglihatan"},
		},
	}
}
