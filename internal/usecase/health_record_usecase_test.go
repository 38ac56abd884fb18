package usecase

import (
	"errors"
	"testing"
	"time"

	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type recordFixture struct {
	*accessFixture
	uc HealthRecordUsecase[entity.WeightRecord]
}

func newRecordFixture() *recordFixture {
	base := newAccessFixture()
	accessUc := NewRecordAccessUsecase[entity.WeightRecord](nil, testLogger(), base.records, base.patients, base.doctors, base.appointments)
	uc := NewHealthRecordUsecase[entity.WeightRecord](nil, testLogger(), entity.KindWeight, base.records, base.patients, base.doctors, base.appointments, accessUc, noopAuditService{})
	return &recordFixture{accessFixture: base, uc: uc}
}

func weightBuild(recordDate time.Time, kg float64) func(patient *entity.PatientProfile) *entity.WeightRecord {
	return func(patient *entity.PatientProfile) *entity.WeightRecord {
		return &entity.WeightRecord{
			PatientID:     patient.ID,
			RecordDate:    recordDate,
			MeasuredAt:    recordDate.Add(8 * time.Hour),
			WeightValueKg: decimal.NewFromFloat(kg),
		}
	}
}

func TestCreateWeightRecordOnePerDay(t *testing.T) {
	f := newRecordFixture()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	record, err := f.uc.Create(patientCtx(f.patientUserID), weightBuild(day, 71.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.PatientID != f.patient.ID {
		t.Errorf("expected owner %s, got %s", f.patient.ID, record.PatientID)
	}

	_, err = f.uc.Create(patientCtx(f.patientUserID), weightBuild(day, 71.4))
	var validation *apperror.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for a second record on the same date, got %v", err)
	}

	// The next day is a fresh date.
	if _, err := f.uc.Create(patientCtx(f.patientUserID), weightBuild(day.AddDate(0, 0, 1), 71.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListGatesDoctorsByAppointment(t *testing.T) {
	f := newRecordFixture()

	doctorUserID, doctor := f.addDoctor()

	_, err := f.uc.List(doctorCtx(doctorUserID), f.patient.ID)
	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError without an upcoming appointment, got %v", err)
	}

	f.appointments.add(f.patient.ID, doctor.ID, entity.AppointmentUpcoming)

	list, err := f.uc.List(doctorCtx(doctorUserID), f.patient.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("expected 1 record, got %d", list.Total)
	}
	if list.RecordOwner == nil || list.RecordOwner.FirstName != "Ava" {
		t.Errorf("unexpected record owner: %+v", list.RecordOwner)
	}
}

func TestListOwnRecordsAlwaysAllowed(t *testing.T) {
	f := newRecordFixture()

	list, err := f.uc.List(patientCtx(f.patientUserID), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("expected 1 record, got %d", list.Total)
	}
}

func TestDeleteRecordScopedToOwner(t *testing.T) {
	f := newRecordFixture()

	otherUserID := uuid.New()
	f.patients.add(&entity.PatientProfile{ID: uuid.New(), UserID: otherUserID})

	err := f.uc.Delete(patientCtx(otherUserID), f.record.ID)
	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for someone else's record, got %v", err)
	}

	if err := f.uc.Delete(patientCtx(f.patientUserID), f.record.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.records.byID) != 0 {
		t.Errorf("expected record removed, %d left", len(f.records.byID))
	}
}

func TestGetRecordThroughAccessPath(t *testing.T) {
	f := newRecordFixture()

	resp, err := f.uc.Get(patientCtx(f.patientUserID), f.record.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RecordOwner == nil || resp.RecordOwner.FirstName != "Ava" {
		t.Errorf("unexpected record owner: %+v", resp.RecordOwner)
	}
}
