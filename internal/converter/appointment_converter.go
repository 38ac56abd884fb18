package converter

import (
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// TimeSlotToResponse converts a DoctorTimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot *entity.DoctorTimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.TimeSlotResponse{
		ID:       slot.ID,
		DoctorID: slot.DoctorID,
		StartAt:  slot.StartAt,
		EndAt:    slot.EndAt,
		Type:     string(slot.Type),
	}
}

// TimeSlotsToResponses converts a slice of DoctorTimeSlot entities
func TimeSlotsToResponses(slots []entity.DoctorTimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		resp := TimeSlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToResponse converts a ConsultAppointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.ConsultAppointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		Status:      string(appointment.Status),
		MeetingLink: appointment.MeetingLink,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include slot and doctor info if preloaded
	if appointment.TimeSlot.ID != uuid.Nil {
		response.TimeSlot = TimeSlotToResponse(&appointment.TimeSlot)
		if appointment.TimeSlot.Doctor.ID != uuid.Nil {
			response.Doctor = DoctorProfileToResponse(&appointment.TimeSlot.Doctor)
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of ConsultAppointment entities
func AppointmentsToResponses(appointments []entity.ConsultAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
