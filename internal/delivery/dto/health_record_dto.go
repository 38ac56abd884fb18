package dto

import "time"

// Request DTOs, one per record kind. The authorization and fetch paths are
// generic; only creation payloads differ per kind.

type CreateBloodPressureRecordRequest struct {
	MeasuredAt     time.Time `json:"measured_at" validate:"required"`
	SystolicMmHg   int       `json:"systolic_mm_hg" validate:"required,gte=40,lte=300"`
	DiastolicMmHg  int       `json:"diastolic_mm_hg" validate:"required,gte=20,lte=200"`
	HeartBeatSpeed int       `json:"heart_beat_speed" validate:"required,gte=20,lte=300"`
	Note           *string   `json:"note,omitempty"`
}

type CreateBloodSugarRecordRequest struct {
	MeasuredAt      time.Time `json:"measured_at" validate:"required"`
	ValueMmoL       float64   `json:"value_mmo_l" validate:"required,gt=0"`
	MeasurementType string    `json:"measurement_type" validate:"required,oneof=FAST_PLASMA_GLUCOSE POSTPRANDIAL_PLASMA_GLUCOSE"`
	Note            *string   `json:"note,omitempty"`
}

type CreateWeightRecordRequest struct {
	MeasuredAt    time.Time `json:"measured_at" validate:"required"`
	WeightValueKg float64   `json:"weight_value_kg" validate:"required,gt=0,lte=500"`
	Note          *string   `json:"note,omitempty"`
}

type CreateSleepRecordRequest struct {
	SleepStartAt time.Time `json:"sleep_start_at" validate:"required"`
	SleepEndAt   time.Time `json:"sleep_end_at" validate:"required,gtfield=SleepStartAt"`
	SleepQuality string    `json:"sleep_quality" validate:"required,oneof=GOOD FAIR POOR"`
	Note         *string   `json:"note,omitempty"`
}

type CreateExerciseRecordRequest struct {
	MeasuredAt          time.Time `json:"measured_at" validate:"required"`
	ExerciseType        string    `json:"exercise_type" validate:"required,oneof=WALKING RUNNING CYCLING SWIMMING WEIGHT_TRAINING AEROBIC_EXERCISE YOGA OTHER"`
	ExerciseDurationMin int       `json:"exercise_duration_min" validate:"required,gt=0"`
	Intensity           string    `json:"intensity" validate:"required,oneof=HIGH MODERATE LOW"`
	KcalBurned          float64   `json:"kcal_burned" validate:"gte=0"`
	Note                *string   `json:"note,omitempty"`
}

type CreateFoodRecordRequest struct {
	MeasuredAt   time.Time `json:"measured_at" validate:"required"`
	MealTime     string    `json:"meal_time" validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
	FoodCategory string    `json:"food_category,omitempty"`
	Kcal         float64   `json:"kcal" validate:"gte=0"`
	Note         *string   `json:"note,omitempty"`
}

type CreateGlycatedHemoglobinRecordRequest struct {
	MeasuredAt            time.Time `json:"measured_at" validate:"required"`
	GlycatedHemoglobinPct float64   `json:"glycated_hemoglobin_pct" validate:"required,gt=0,lte=30"`
	Note                  *string   `json:"note,omitempty"`
}

// Response DTOs

type HealthRecordResponse struct {
	Data        interface{}          `json:"data"`
	RecordOwner *RecordOwnerResponse `json:"record_owner"`
}

type HealthRecordListResponse struct {
	Records     interface{}          `json:"records"`
	RecordOwner *RecordOwnerResponse `json:"record_owner"`
	Total       int                  `json:"total"`
}
