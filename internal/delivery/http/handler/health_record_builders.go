package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/pkg/validator"

	"github.com/shopspring/decimal"
)

// One builder per record kind. Each decodes its creation DTO, validates it,
// and returns the entity constructor the usecase invokes with the resolved
// patient profile.

func BloodPressureBuilder(v *validator.CustomValidator) recordBuilder[entity.BloodPressureRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.BloodPressureRecord, error) {
		var req dto.CreateBloodPressureRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.BloodPressureRecord {
			return &entity.BloodPressureRecord{
				PatientID:      patient.ID,
				RecordDate:     dateOnly(req.MeasuredAt),
				MeasuredAt:     req.MeasuredAt,
				SystolicMmHg:   req.SystolicMmHg,
				DiastolicMmHg:  req.DiastolicMmHg,
				HeartBeatSpeed: req.HeartBeatSpeed,
				Note:           req.Note,
			}
		}, nil
	}
}

func BloodSugarBuilder(v *validator.CustomValidator) recordBuilder[entity.BloodSugarRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.BloodSugarRecord, error) {
		var req dto.CreateBloodSugarRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.BloodSugarRecord {
			return &entity.BloodSugarRecord{
				PatientID:       patient.ID,
				MeasuredAt:      req.MeasuredAt,
				ValueMmoL:       req.ValueMmoL,
				MeasurementType: entity.BloodSugarMeasurementType(req.MeasurementType),
				Note:            req.Note,
			}
		}, nil
	}
}

func WeightBuilder(v *validator.CustomValidator) recordBuilder[entity.WeightRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.WeightRecord, error) {
		var req dto.CreateWeightRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.WeightRecord {
			weight := decimal.NewFromFloat(req.WeightValueKg)
			return &entity.WeightRecord{
				PatientID:     patient.ID,
				RecordDate:    dateOnly(req.MeasuredAt),
				MeasuredAt:    req.MeasuredAt,
				WeightValueKg: weight,
				BodyMassIndex: bodyMassIndex(weight, patient.HeightValueCm),
				Note:          req.Note,
			}
		}, nil
	}
}

func SleepBuilder(v *validator.CustomValidator) recordBuilder[entity.SleepRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.SleepRecord, error) {
		var req dto.CreateSleepRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		duration := req.SleepEndAt.Sub(req.SleepStartAt).Hours()
		return func(patient *entity.PatientProfile) *entity.SleepRecord {
			return &entity.SleepRecord{
				PatientID:         patient.ID,
				RecordDate:        dateOnly(req.SleepEndAt),
				SleepStartAt:      req.SleepStartAt,
				SleepEndAt:        req.SleepEndAt,
				SleepDurationHour: math.Round(duration*100) / 100,
				SleepQuality:      entity.SleepQuality(req.SleepQuality),
				Note:              req.Note,
			}
		}, nil
	}
}

func ExerciseBuilder(v *validator.CustomValidator) recordBuilder[entity.ExerciseRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.ExerciseRecord, error) {
		var req dto.CreateExerciseRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.ExerciseRecord {
			return &entity.ExerciseRecord{
				PatientID:           patient.ID,
				MeasuredAt:          req.MeasuredAt,
				ExerciseType:        entity.ExerciseType(req.ExerciseType),
				ExerciseDurationMin: req.ExerciseDurationMin,
				Intensity:           entity.IntensityType(req.Intensity),
				KcalBurned:          decimal.NewFromFloat(req.KcalBurned),
				Note:                req.Note,
			}
		}, nil
	}
}

func FoodBuilder(v *validator.CustomValidator) recordBuilder[entity.FoodRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.FoodRecord, error) {
		var req dto.CreateFoodRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.FoodRecord {
			return &entity.FoodRecord{
				PatientID:    patient.ID,
				MeasuredAt:   req.MeasuredAt,
				MealTime:     entity.MealTimeCategory(req.MealTime),
				FoodCategory: req.FoodCategory,
				Kcal:         decimal.NewFromFloat(req.Kcal),
				Note:         req.Note,
			}
		}, nil
	}
}

func GlycatedHemoglobinBuilder(v *validator.CustomValidator) recordBuilder[entity.GlycatedHemoglobinRecord] {
	return func(r *http.Request) (func(*entity.PatientProfile) *entity.GlycatedHemoglobinRecord, error) {
		var req dto.CreateGlycatedHemoglobinRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errInvalidBody
		}
		if err := v.Validate(&req); err != nil {
			return nil, err
		}
		return func(patient *entity.PatientProfile) *entity.GlycatedHemoglobinRecord {
			return &entity.GlycatedHemoglobinRecord{
				PatientID:             patient.ID,
				MeasuredAt:            req.MeasuredAt,
				GlycatedHemoglobinPct: decimal.NewFromFloat(req.GlycatedHemoglobinPct),
				Note:                  req.Note,
			}
		}, nil
	}
}

// dateOnly truncates a timestamp to its calendar day, which is the grain the
// one-record-per-day indexes work on.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// bodyMassIndex computes kg / m^2 from the patient's registered height.
func bodyMassIndex(weightKg, heightCm decimal.Decimal) decimal.Decimal {
	if heightCm.IsZero() {
		return decimal.Zero
	}
	heightM := heightCm.Div(decimal.NewFromInt(100))
	return weightKg.Div(heightM.Mul(heightM)).Round(2)
}
