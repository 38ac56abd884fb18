package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func patientCtx(userID uuid.UUID) context.Context {
	return middleware.ContextWithUser(context.Background(), userID, "patient@example.com", entity.RoleIDPatient, "token-id")
}

func doctorCtx(userID uuid.UUID) context.Context {
	return middleware.ContextWithUser(context.Background(), userID, "doctor@example.com", entity.RoleIDDoctor, "token-id")
}

type accessFixture struct {
	patients     *memPatientRepo
	doctors      *memDoctorRepo
	appointments *memAppointmentRepo
	records      *memWeightRepo
	uc           RecordAccessUsecase[entity.WeightRecord]

	patientUserID uuid.UUID
	patient       *entity.PatientProfile
	record        *entity.WeightRecord
}

func newAccessFixture() *accessFixture {
	f := &accessFixture{
		patients:     newMemPatientRepo(),
		doctors:      newMemDoctorRepo(),
		appointments: newMemAppointmentRepo(),
		records:      newMemWeightRepo(),
	}

	f.patientUserID = uuid.New()
	f.patient = &entity.PatientProfile{
		ID:        uuid.New(),
		UserID:    f.patientUserID,
		FirstName: "Ava",
		LastName:  "Stone",
		BirthDate: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:    entity.GenderFemale,
	}
	f.patients.add(f.patient)

	f.record = &entity.WeightRecord{
		ID:            uuid.New(),
		PatientID:     f.patient.ID,
		RecordDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		MeasuredAt:    time.Date(2026, 8, 1, 7, 30, 0, 0, time.UTC),
		WeightValueKg: decimal.NewFromFloat(70.5),
		BodyMassIndex: decimal.NewFromFloat(23.1),
	}
	f.records.add(f.record)

	f.uc = NewRecordAccessUsecase[entity.WeightRecord](nil, testLogger(), f.records, f.patients, f.doctors, f.appointments)
	return f
}

func (f *accessFixture) addDoctor() (uuid.UUID, *entity.DoctorProfile) {
	userID := uuid.New()
	doctor := &entity.DoctorProfile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "Greg",
		LastName:  "House",
		STRNumber: "STR-" + userID.String()[:8],
	}
	f.doctors.add(doctor)
	return userID, doctor
}

func TestAuthorizeAndFetchRecordMissing(t *testing.T) {
	f := newAccessFixture()

	_, _, err := f.uc.AuthorizeAndFetch(patientCtx(f.patientUserID), uuid.New(), uuid.Nil)

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPatientReadsOwnRecord(t *testing.T) {
	f := newAccessFixture()

	record, owner, err := f.uc.AuthorizeAndFetch(patientCtx(f.patientUserID), f.record.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != f.record.ID {
		t.Errorf("expected record %s, got %s", f.record.ID, record.ID)
	}
	if owner.FirstName != "Ava" || owner.LastName != "Stone" {
		t.Errorf("unexpected owner projection: %+v", owner)
	}
	if owner.BirthDate != "1990-03-14" {
		t.Errorf("expected birth date 1990-03-14, got %s", owner.BirthDate)
	}
}

func TestPatientCannotReadOthersRecord(t *testing.T) {
	f := newAccessFixture()

	otherUserID := uuid.New()
	f.patients.add(&entity.PatientProfile{ID: uuid.New(), UserID: otherUserID, FirstName: "Bob", LastName: "Reed"})

	_, _, err := f.uc.AuthorizeAndFetch(patientCtx(otherUserID), f.record.ID, uuid.Nil)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestDoctorReadsRecordDuringUpcomingAppointment(t *testing.T) {
	f := newAccessFixture()

	doctorUserID, doctor := f.addDoctor()
	f.appointments.add(f.patient.ID, doctor.ID, entity.AppointmentUpcoming)

	record, owner, err := f.uc.AuthorizeAndFetch(doctorCtx(doctorUserID), f.record.ID, f.patient.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != f.record.ID {
		t.Errorf("expected record %s, got %s", f.record.ID, record.ID)
	}
	if owner.FirstName != "Ava" {
		t.Errorf("unexpected owner: %+v", owner)
	}
}

func TestDoctorDeniedWithoutUpcomingAppointment(t *testing.T) {
	f := newAccessFixture()

	doctorUserID, doctor := f.addDoctor()
	f.appointments.add(f.patient.ID, doctor.ID, entity.AppointmentCompleted)
	f.appointments.add(f.patient.ID, doctor.ID, entity.AppointmentCanceled)

	_, _, err := f.uc.AuthorizeAndFetch(doctorCtx(doctorUserID), f.record.ID, f.patient.ID)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestDoctorAccessEndsWhenAppointmentCompletes(t *testing.T) {
	f := newAccessFixture()

	doctorUserID, doctor := f.addDoctor()
	appointment := f.appointments.add(f.patient.ID, doctor.ID, entity.AppointmentUpcoming)

	if _, _, err := f.uc.AuthorizeAndFetch(doctorCtx(doctorUserID), f.record.ID, f.patient.ID); err != nil {
		t.Fatalf("expected access while upcoming, got %v", err)
	}

	appointment.Status = entity.AppointmentCompleted

	_, _, err := f.uc.AuthorizeAndFetch(doctorCtx(doctorUserID), f.record.ID, f.patient.ID)
	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError after completion, got %v", err)
	}
}

func TestDoctorDeniedWhenRecordBelongsToAnotherPatient(t *testing.T) {
	f := newAccessFixture()

	other := &entity.PatientProfile{ID: uuid.New(), UserID: uuid.New(), FirstName: "Bob", LastName: "Reed"}
	f.patients.add(other)

	doctorUserID, doctor := f.addDoctor()
	// The gate passes for the other patient but the record is Ava's.
	f.appointments.add(other.ID, doctor.ID, entity.AppointmentUpcoming)

	_, _, err := f.uc.AuthorizeAndFetch(doctorCtx(doctorUserID), f.record.ID, other.ID)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestAuthorizeAndFetchUnauthenticated(t *testing.T) {
	f := newAccessFixture()

	_, _, err := f.uc.AuthorizeAndFetch(context.Background(), f.record.ID, uuid.Nil)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestPatientWithoutProfileDenied(t *testing.T) {
	f := newAccessFixture()

	_, _, err := f.uc.AuthorizeAndFetch(patientCtx(uuid.New()), f.record.ID, uuid.Nil)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}
