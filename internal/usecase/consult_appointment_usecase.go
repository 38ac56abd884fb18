package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-health-consult-platform/internal/converter"
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/internal/service"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// cancelCutoff is how long before the slot start a patient may still cancel.
const cancelCutoff = 24 * time.Hour

// ConsultAppointmentUsecase manages doctor time slots and the bookings on
// them. Booking is serialized per slot through a Redis hold so two patients
// can never end up with the same slot.
type ConsultAppointmentUsecase interface {
	CreateTimeSlot(ctx context.Context, request *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	GetDoctorTimeSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) (*dto.TimeSlotListResponse, error)
	DeleteTimeSlot(ctx context.Context, timeSlotID uuid.UUID) error
	BookAppointment(ctx context.Context, request *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type consultAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	doctorRepo      repository.DoctorProfileRepository
	timeSlotRepo    repository.DoctorTimeSlotRepository
	appointmentRepo repository.ConsultAppointmentRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
}

func NewConsultAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	timeSlotRepo repository.DoctorTimeSlotRepository,
	appointmentRepo repository.ConsultAppointmentRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
) ConsultAppointmentUsecase {
	return &consultAppointmentUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		timeSlotRepo:    timeSlotRepo,
		appointmentRepo: appointmentRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
	}
}

func (u *consultAppointmentUsecase) CreateTimeSlot(ctx context.Context, request *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	doctor, err := u.requesterDoctor(ctx)
	if err != nil {
		return nil, err
	}

	if !request.EndAt.After(request.StartAt) {
		return nil, apperror.NewValidation("end time must be after start time")
	}
	if request.StartAt.Before(time.Now()) {
		return nil, apperror.NewValidation("time slot must start in the future")
	}

	slot := &entity.DoctorTimeSlot{
		DoctorID: doctor.ID,
		StartAt:  request.StartAt,
		EndAt:    request.EndAt,
		Type:     entity.TimeSlotType(request.Type),
	}
	if err := u.timeSlotRepo.Create(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to create time slot for doctor %s: %+v", doctor.ID, err)
		return nil, err
	}

	u.log.Infof("Time slot created: id=%s, doctor=%s", slot.ID, doctor.ID)
	return converter.TimeSlotToResponse(slot), nil
}

func (u *consultAppointmentUsecase) GetDoctorTimeSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) (*dto.TimeSlotListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFound("doctor does not exist")
	}

	slots, err := u.timeSlotRepo.FindByDoctorIDAndRange(ctx, u.db, doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to list time slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		TimeSlots: converter.TimeSlotsToResponses(slots),
		Total:     len(slots),
	}, nil
}

// DeleteTimeSlot removes one of the requesting doctor's own slots. A slot
// with a live booking cannot be withdrawn from under the patient.
func (u *consultAppointmentUsecase) DeleteTimeSlot(ctx context.Context, timeSlotID uuid.UUID) error {
	doctor, err := u.requesterDoctor(ctx)
	if err != nil {
		return err
	}

	active, err := u.appointmentRepo.FindActiveByTimeSlotID(ctx, u.db, timeSlotID)
	if err != nil {
		u.log.Warnf("Failed to check bookings for time slot %s: %+v", timeSlotID, err)
		return err
	}
	if active != nil {
		return apperror.NewValidation("time slot has an upcoming appointment")
	}

	affected, err := u.timeSlotRepo.Delete(ctx, u.db, timeSlotID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete time slot %s: %+v", timeSlotID, err)
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("time slot does not exist")
	}

	u.log.Infof("Time slot deleted: id=%s, doctor=%s", timeSlotID, doctor.ID)
	return nil
}

// BookAppointment claims a slot for the requesting patient. The Redis hold
// is taken before the database check so concurrent bookers of the same slot
// are serialized; if the insert then fails the hold is released so the slot
// is not stuck until the TTL.
func (u *consultAppointmentUsecase) BookAppointment(ctx context.Context, request *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return nil, err
	}

	slot, err := u.timeSlotRepo.FindByID(ctx, u.db, request.TimeSlotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot %s: %+v", request.TimeSlotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, apperror.NewNotFound("time slot does not exist")
	}
	if slot.StartAt.Before(time.Now()) {
		return nil, apperror.NewValidation("time slot has already started")
	}

	if err := u.slotHoldService.Acquire(ctx, slot.ID, patient.ID); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, apperror.NewValidation("time slot is already held by another patient")
		}
		u.log.Warnf("Failed to acquire hold on time slot %s: %+v", slot.ID, err)
		return nil, err
	}

	active, err := u.appointmentRepo.FindActiveByTimeSlotID(ctx, u.db, slot.ID)
	if err != nil {
		u.releaseHold(ctx, slot.ID, patient.ID)
		u.log.Warnf("Failed to check bookings for time slot %s: %+v", slot.ID, err)
		return nil, err
	}
	if active != nil {
		u.releaseHold(ctx, slot.ID, patient.ID)
		return nil, apperror.NewValidation("time slot is already booked")
	}

	appointment := &entity.ConsultAppointment{
		PatientID:  patient.ID,
		TimeSlotID: slot.ID,
		Status:     entity.AppointmentUpcoming,
	}
	if slot.Type == entity.TimeSlotOnline {
		link := fmt.Sprintf("https://meet.health-consult.app/%s", uuid.New())
		appointment.MeetingLink = &link
	}
	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.releaseHold(ctx, slot.ID, patient.ID)
		u.log.Warnf("Failed to create appointment for slot %s: %+v", slot.ID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentBook, "consult_appointment", appointment.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment booked: id=%s, patient=%s, slot=%s", appointment.ID, patient.ID, slot.ID)

	appointment.TimeSlot = *slot
	return converter.AppointmentToResponse(appointment), nil
}

func (u *consultAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester role missing")
	}

	var appointments []entity.ConsultAppointment
	switch roleID {
	case entity.RoleIDPatient:
		patient, err := u.requesterPatient(ctx)
		if err != nil {
			return nil, err
		}
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, u.db, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to list appointments for patient %s: %+v", patient.ID, err)
			return nil, err
		}
	case entity.RoleIDDoctor:
		doctor, err := u.requesterDoctor(ctx)
		if err != nil {
			return nil, err
		}
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, u.db, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctor.ID, err)
			return nil, err
		}
	default:
		return nil, apperror.NewAuthorization("role is not allowed to list appointments")
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment lets the booking patient back out up to 24 hours before
// the slot starts. The status flip is compare-and-set, so a cancel racing a
// complete (or another cancel) loses cleanly.
func (u *consultAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFound("appointment does not exist")
	}
	if appointment.PatientID != patient.ID {
		return nil, apperror.NewAuthorization("appointment does not belong to the requester")
	}
	if !appointment.IsUpcoming() {
		return nil, apperror.NewValidation("only upcoming appointments can be canceled")
	}
	if time.Until(appointment.TimeSlot.StartAt) < cancelCutoff {
		return nil, apperror.NewValidation("appointments can only be canceled at least 24 hours before start")
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointmentID, entity.AppointmentUpcoming, entity.AppointmentCanceled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewValidation("appointment is no longer upcoming")
	}

	u.releaseHold(ctx, appointment.TimeSlotID, patient.ID)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentCancel, "consult_appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment canceled: id=%s, patient=%s", appointmentID, patient.ID)

	appointment.Cancel()
	return converter.AppointmentToResponse(appointment), nil
}

// CompleteAppointment marks a consultation as held. Only the doctor who
// owns the booked slot may complete it, and completion immediately revokes
// the record visibility the appointment granted.
func (u *consultAppointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	doctor, err := u.requesterDoctor(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFound("appointment does not exist")
	}
	if appointment.TimeSlot.DoctorID != doctor.ID {
		return nil, apperror.NewAuthorization("appointment does not belong to the requester")
	}
	if !appointment.IsUpcoming() {
		return nil, apperror.NewValidation("only upcoming appointments can be completed")
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointmentID, entity.AppointmentUpcoming, entity.AppointmentCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewValidation("appointment is no longer upcoming")
	}

	u.releaseHold(ctx, appointment.TimeSlotID, appointment.PatientID)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentDone, "consult_appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment completed: id=%s, doctor=%s", appointmentID, doctor.ID)

	appointment.Complete()
	return converter.AppointmentToResponse(appointment), nil
}

// releaseHold is best-effort: the hold expires on its own, so a failed
// release only delays slot reuse.
func (u *consultAppointmentUsecase) releaseHold(ctx context.Context, timeSlotID, patientID uuid.UUID) {
	if err := u.slotHoldService.Release(ctx, timeSlotID, patientID); err != nil {
		u.log.Warnf("Failed to release hold on time slot %s: %+v", timeSlotID, err)
	}
}

func (u *consultAppointmentUsecase) requesterPatient(ctx context.Context) (*entity.PatientProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	patient, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewAuthorization("patient does not exist")
	}
	return patient, nil
}

func (u *consultAppointmentUsecase) requesterDoctor(ctx context.Context) (*entity.DoctorProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewAuthorization("doctor does not exist")
	}
	return doctor, nil
}
