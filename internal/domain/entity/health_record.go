package entity

import "github.com/google/uuid"

// HealthRecord is the shared contract of all measurement record kinds. The
// record access rules are identical across kinds, so anything that can name
// its owning patient can flow through them.
type HealthRecord interface {
	RecordID() uuid.UUID
	OwnerPatientID() uuid.UUID
}

// HealthRecordKind names a measurement record table, used for audit metadata.
type HealthRecordKind string

const (
	KindBloodPressure      HealthRecordKind = "blood_pressure"
	KindBloodSugar         HealthRecordKind = "blood_sugar"
	KindWeight             HealthRecordKind = "weight"
	KindSleep              HealthRecordKind = "sleep"
	KindExercise           HealthRecordKind = "exercise"
	KindFood               HealthRecordKind = "food"
	KindGlycatedHemoglobin HealthRecordKind = "glycated_hemoglobin"
)
