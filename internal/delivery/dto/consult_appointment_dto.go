package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTimeSlotRequest struct {
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
	Type    string    `json:"type" validate:"required,oneof=ONLINE CLINIC"`
}

type BookAppointmentRequest struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" validate:"required"`
}

// Response DTOs

type TimeSlotResponse struct {
	ID       uuid.UUID `json:"id"`
	DoctorID uuid.UUID `json:"doctor_id"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	Type     string    `json:"type"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int                `json:"total"`
}

type AppointmentResponse struct {
	ID          uuid.UUID         `json:"id"`
	PatientID   uuid.UUID         `json:"patient_id"`
	Status      string            `json:"status"`
	MeetingLink *string           `json:"meeting_link,omitempty"`
	TimeSlot    *TimeSlotResponse `json:"time_slot,omitempty"`
	Doctor      *DoctorResponse   `json:"doctor,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
