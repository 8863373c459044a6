package models

import (
	"time"
)

// Medication statuses.
const (
	MedicationActive       = "active"
	MedicationDiscontinued = "discontinued"
	MedicationCompleted    = "completed"
)

// MedicalRecord is the clinical note for one visit, owned by a
// doctor+patient pair.
type MedicalRecord struct {
	ID            uint   `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID     int64  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID      int64  `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	AppointmentID *uint  `gorm:"column:appointment_id;index" json:"appointment_id"`
	VisitDate     string `gorm:"size:10;column:visit_date;not null;index" json:"visit_date"`

	ChiefComplaint string `gorm:"type:text;column:chief_complaint;not null" json:"chief_complaint"`
	Diagnosis      string `gorm:"type:text;column:diagnosis" json:"diagnosis"`
	TreatmentNotes string `gorm:"type:text;column:treatment_notes" json:"treatment_notes"`

	Temperature   string `gorm:"size:10;column:temperature" json:"temperature"`
	BloodPressure string `gorm:"size:10;column:blood_pressure" json:"blood_pressure"`
	HeartRate     string `gorm:"size:10;column:heart_rate" json:"heart_rate"`

	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Patient       User           `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Doctor        User           `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID;references:ID" json:"prescriptions,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// Prescription model
type Prescription struct {
	ID              uint   `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	MedicalRecordID *uint  `gorm:"column:medical_record_id;index" json:"medical_record_id"`
	PatientID       int64  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID        int64  `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	MedicationName  string `gorm:"size:255;column:medication_name;not null" json:"medication_name"`
	Dosage          string `gorm:"size:100;column:dosage;not null" json:"dosage"`
	Frequency       string `gorm:"size:100;column:frequency" json:"frequency"`
	Duration        string `gorm:"size:100;column:duration" json:"duration"`
	Instructions    string `gorm:"type:text;column:instructions" json:"instructions"`
	IssuedDate      string `gorm:"size:10;column:issued_date;not null" json:"issued_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient   User      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Doctor    User      `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Medication tracks an ongoing course for a patient. PrescriptionID is nil
// for medication the patient reported on their own.
type Medication struct {
	ID             uint   `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID      int64  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PrescriptionID *uint  `gorm:"column:prescription_id;index" json:"prescription_id"`
	Name           string `gorm:"size:255;column:name;not null" json:"name"`
	Dosage         string `gorm:"size:100;column:dosage" json:"dosage"`
	StartDate      string `gorm:"size:10;column:start_date;not null" json:"start_date"`
	EndDate        string `gorm:"size:10;column:end_date" json:"end_date"`
	Status         string `gorm:"column:status;check:status IN ('active', 'discontinued', 'completed');not null;default:active" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Patient   User      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Medication) TableName() string {
	return "medications"
}

// ValidMedicationStatus reports whether s is a known medication status.
func ValidMedicationStatus(s string) bool {
	switch s {
	case MedicationActive, MedicationDiscontinued, MedicationCompleted:
		return true
	}
	return false
}
