package usecase

import (
	"context"
	"time"

	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Map-backed repository fakes. The usecases never touch the *gorm.DB they
// are handed (they only pass it through to repositories), so tests run with
// a nil db and these in-memory stores.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type memPatientRepo struct {
	byID map[uuid.UUID]*entity.PatientProfile
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{byID: map[uuid.UUID]*entity.PatientProfile{}}
}

func (m *memPatientRepo) add(profile *entity.PatientProfile) {
	m.byID[profile.ID] = profile
}

func (m *memPatientRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.byID[profile.ID] = profile
	return nil
}

func (m *memPatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientProfile, error) {
	return m.byID[id], nil
}

func (m *memPatientRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	for _, profile := range m.byID {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, nil
}

func (m *memPatientRepo) Update(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	m.byID[profile.ID] = profile
	return nil
}

type memDoctorRepo struct {
	byID map[uuid.UUID]*entity.DoctorProfile
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{byID: map[uuid.UUID]*entity.DoctorProfile{}}
}

func (m *memDoctorRepo) add(profile *entity.DoctorProfile) {
	m.byID[profile.ID] = profile
}

func (m *memDoctorRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.byID[profile.ID] = profile
	return nil
}

func (m *memDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	return m.byID[id], nil
}

func (m *memDoctorRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	for _, profile := range m.byID {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, nil
}

func (m *memDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	for _, profile := range m.byID {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (m *memDoctorRepo) Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	m.byID[profile.ID] = profile
	return nil
}

// memAppointmentRepo stores flattened patient/doctor/status links, which is
// all the visibility gate reads.
type memAppointmentRepo struct {
	items []*entity.ConsultAppointment
	// doctor owning each appointment's slot, keyed by appointment id
	slotDoctor map[uuid.UUID]uuid.UUID
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{slotDoctor: map[uuid.UUID]uuid.UUID{}}
}

func (m *memAppointmentRepo) add(patientID, doctorID uuid.UUID, status entity.ConsultAppointmentStatus) *entity.ConsultAppointment {
	appointment := &entity.ConsultAppointment{
		ID:        uuid.New(),
		PatientID: patientID,
		Status:    status,
	}
	m.items = append(m.items, appointment)
	m.slotDoctor[appointment.ID] = doctorID
	return appointment
}

func (m *memAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.ConsultAppointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	m.items = append(m.items, appointment)
	return nil
}

func (m *memAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ConsultAppointment, error) {
	for _, appointment := range m.items {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return nil, nil
}

func (m *memAppointmentRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ConsultAppointment, error) {
	var result []entity.ConsultAppointment
	for _, appointment := range m.items {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (m *memAppointmentRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ConsultAppointment, error) {
	var result []entity.ConsultAppointment
	for _, appointment := range m.items {
		if m.slotDoctor[appointment.ID] == doctorID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (m *memAppointmentRepo) FindByPatientIDAndDoctorIDAndStatus(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID, statuses []entity.ConsultAppointmentStatus) ([]entity.ConsultAppointment, error) {
	var result []entity.ConsultAppointment
	for _, appointment := range m.items {
		if appointment.PatientID != patientID || m.slotDoctor[appointment.ID] != doctorID {
			continue
		}
		for _, status := range statuses {
			if appointment.Status == status {
				result = append(result, *appointment)
				break
			}
		}
	}
	return result, nil
}

func (m *memAppointmentRepo) FindActiveByTimeSlotID(ctx context.Context, db *gorm.DB, timeSlotID uuid.UUID) (*entity.ConsultAppointment, error) {
	for _, appointment := range m.items {
		if appointment.TimeSlotID == timeSlotID && appointment.Status == entity.AppointmentUpcoming {
			return appointment, nil
		}
	}
	return nil, nil
}

func (m *memAppointmentRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.ConsultAppointmentStatus) (int64, error) {
	for _, appointment := range m.items {
		if appointment.ID == id && appointment.Status == from {
			appointment.Status = to
			return 1, nil
		}
	}
	return 0, nil
}

// memWeightRepo implements the generic record store for weight records and
// enforces the one-per-day index the way PostgreSQL would.
type memWeightRepo struct {
	byID map[uuid.UUID]*entity.WeightRecord
}

func newMemWeightRepo() *memWeightRepo {
	return &memWeightRepo{byID: map[uuid.UUID]*entity.WeightRecord{}}
}

func (m *memWeightRepo) add(record *entity.WeightRecord) {
	m.byID[record.ID] = record
}

func (m *memWeightRepo) Create(ctx context.Context, db *gorm.DB, record *entity.WeightRecord) error {
	for _, existing := range m.byID {
		if existing.PatientID == record.PatientID && existing.RecordDate.Equal(record.RecordDate) {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uidx_weight_patient_date"}
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.byID[record.ID] = record
	return nil
}

func (m *memWeightRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.WeightRecord, error) {
	return m.byID[id], nil
}

func (m *memWeightRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.WeightRecord, error) {
	var records []entity.WeightRecord
	for _, record := range m.byID {
		if record.PatientID == patientID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (m *memWeightRepo) DeleteByIDAndPatientID(ctx context.Context, db *gorm.DB, id, patientID uuid.UUID) (int64, error) {
	record, ok := m.byID[id]
	if !ok || record.PatientID != patientID {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

type memQuestionRepo struct {
	byID map[uuid.UUID]*entity.PatientQuestion
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{byID: map[uuid.UUID]*entity.PatientQuestion{}}
}

func (m *memQuestionRepo) add(question *entity.PatientQuestion) {
	m.byID[question.ID] = question
}

func (m *memQuestionRepo) Create(ctx context.Context, db *gorm.DB, question *entity.PatientQuestion) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	m.byID[question.ID] = question
	return nil
}

func (m *memQuestionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestion, error) {
	return m.byID[id], nil
}

func (m *memQuestionRepo) FindByAskerID(ctx context.Context, db *gorm.DB, askerID uuid.UUID) ([]entity.PatientQuestion, error) {
	var result []entity.PatientQuestion
	for _, question := range m.byID {
		if question.AskerID == askerID {
			result = append(result, *question)
		}
	}
	return result, nil
}

func (m *memQuestionRepo) FindBySpecialty(ctx context.Context, db *gorm.DB, specialty string) ([]entity.PatientQuestion, error) {
	var result []entity.PatientQuestion
	for _, question := range m.byID {
		if question.MedicalSpecialty == specialty {
			result = append(result, *question)
		}
	}
	return result, nil
}

func (m *memQuestionRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

type memAnswerRepo struct {
	byID map[uuid.UUID]*entity.PatientQuestionAnswer
}

func newMemAnswerRepo() *memAnswerRepo {
	return &memAnswerRepo{byID: map[uuid.UUID]*entity.PatientQuestionAnswer{}}
}

func (m *memAnswerRepo) add(answer *entity.PatientQuestionAnswer) {
	m.byID[answer.ID] = answer
}

func (m *memAnswerRepo) Create(ctx context.Context, db *gorm.DB, answer *entity.PatientQuestionAnswer) error {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	m.byID[answer.ID] = answer
	return nil
}

func (m *memAnswerRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestionAnswer, error) {
	return m.byID[id], nil
}

func (m *memAnswerRepo) FindByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]entity.PatientQuestionAnswer, error) {
	var result []entity.PatientQuestionAnswer
	for _, answer := range m.byID {
		if answer.PatientQuestionID == questionID {
			result = append(result, *answer)
		}
	}
	return result, nil
}

func (m *memAnswerRepo) FindByQuestionIDAndDoctorID(ctx context.Context, db *gorm.DB, questionID, doctorID uuid.UUID) (*entity.PatientQuestionAnswer, error) {
	for _, answer := range m.byID {
		if answer.PatientQuestionID == questionID && answer.DoctorID == doctorID {
			return answer, nil
		}
	}
	return nil, nil
}

func (m *memAnswerRepo) FindIDsByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, answer := range m.byID {
		if answer.PatientQuestionID == questionID {
			ids = append(ids, answer.ID)
		}
	}
	return ids, nil
}

func (m *memAnswerRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

func (m *memAnswerRepo) DeleteByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (int64, error) {
	var affected int64
	for id, answer := range m.byID {
		if answer.PatientQuestionID == questionID {
			delete(m.byID, id)
			affected++
		}
	}
	return affected, nil
}

// memAgreementRepo keeps creation order so the avatar listing can come back
// most recent first, the way the SQL implementation orders it.
type memAgreementRepo struct {
	byID    map[uuid.UUID]*entity.AnswerAgreement
	order   []uuid.UUID
	avatars map[uuid.UUID]string // doctor id -> avatar URL
}

func newMemAgreementRepo() *memAgreementRepo {
	return &memAgreementRepo{
		byID:    map[uuid.UUID]*entity.AnswerAgreement{},
		avatars: map[uuid.UUID]string{},
	}
}

func (m *memAgreementRepo) setAvatar(doctorID uuid.UUID, url string) {
	m.avatars[doctorID] = url
}

func (m *memAgreementRepo) Create(ctx context.Context, db *gorm.DB, agreement *entity.AnswerAgreement) error {
	for _, existing := range m.byID {
		if existing.AnswerID == agreement.AnswerID && existing.AgreedDoctorID == agreement.AgreedDoctorID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_agreement_answer_doctor"}
		}
	}
	if agreement.ID == uuid.Nil {
		agreement.ID = uuid.New()
	}
	agreement.CreatedAt = time.Now()
	m.byID[agreement.ID] = agreement
	m.order = append(m.order, agreement.ID)
	return nil
}

func (m *memAgreementRepo) FindByAnswerIDAndDoctorID(ctx context.Context, db *gorm.DB, answerID, doctorID uuid.UUID) (*entity.AnswerAgreement, error) {
	for _, agreement := range m.byID {
		if agreement.AnswerID == answerID && agreement.AgreedDoctorID == doctorID {
			return agreement, nil
		}
	}
	return nil, nil
}

func (m *memAgreementRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

func (m *memAgreementRepo) DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error) {
	var affected int64
	for id, agreement := range m.byID {
		for _, answerID := range answerIDs {
			if agreement.AnswerID == answerID {
				delete(m.byID, id)
				affected++
				break
			}
		}
	}
	return affected, nil
}

func (m *memAgreementRepo) CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error) {
	var count int64
	for _, agreement := range m.byID {
		if agreement.AnswerID == answerID {
			count++
		}
	}
	return count, nil
}

func (m *memAgreementRepo) FindAgreedDoctorAvatarsByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) ([]string, error) {
	var avatars []string
	for i := len(m.order) - 1; i >= 0; i-- {
		agreement, ok := m.byID[m.order[i]]
		if !ok || agreement.AnswerID != answerID {
			continue
		}
		avatars = append(avatars, m.avatars[agreement.AgreedDoctorID])
	}
	return avatars, nil
}

type memAppreciationRepo struct {
	byID map[uuid.UUID]*entity.AnswerAppreciation
}

func newMemAppreciationRepo() *memAppreciationRepo {
	return &memAppreciationRepo{byID: map[uuid.UUID]*entity.AnswerAppreciation{}}
}

func (m *memAppreciationRepo) add(appreciation *entity.AnswerAppreciation) {
	m.byID[appreciation.ID] = appreciation
}

func (m *memAppreciationRepo) Create(ctx context.Context, db *gorm.DB, appreciation *entity.AnswerAppreciation) error {
	for _, existing := range m.byID {
		if existing.AnswerID == appreciation.AnswerID && existing.PatientID == appreciation.PatientID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_appreciation_answer_patient"}
		}
	}
	if appreciation.ID == uuid.Nil {
		appreciation.ID = uuid.New()
	}
	m.byID[appreciation.ID] = appreciation
	return nil
}

func (m *memAppreciationRepo) FindByAnswerIDAndPatientID(ctx context.Context, db *gorm.DB, answerID, patientID uuid.UUID) (*entity.AnswerAppreciation, error) {
	for _, appreciation := range m.byID {
		if appreciation.AnswerID == answerID && appreciation.PatientID == patientID {
			return appreciation, nil
		}
	}
	return nil, nil
}

func (m *memAppreciationRepo) CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error) {
	var count int64
	for _, appreciation := range m.byID {
		if appreciation.AnswerID == answerID {
			count++
		}
	}
	return count, nil
}

func (m *memAppreciationRepo) DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error) {
	var affected int64
	for id, appreciation := range m.byID {
		for _, answerID := range answerIDs {
			if appreciation.AnswerID == answerID {
				delete(m.byID, id)
				affected++
				break
			}
		}
	}
	return affected, nil
}

// noopAuditService satisfies service.AuditService without a store.
type noopAuditService struct{}

func (noopAuditService) LogAction(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	return nil
}

var _ service.AuditService = noopAuditService{}

var (
	_ repository.PatientProfileRepository                     = (*memPatientRepo)(nil)
	_ repository.DoctorProfileRepository                      = (*memDoctorRepo)(nil)
	_ repository.ConsultAppointmentRepository                 = (*memAppointmentRepo)(nil)
	_ repository.HealthRecordRepository[entity.WeightRecord]  = (*memWeightRepo)(nil)
	_ repository.PatientQuestionRepository                    = (*memQuestionRepo)(nil)
	_ repository.PatientQuestionAnswerRepository              = (*memAnswerRepo)(nil)
	_ repository.AnswerAgreementRepository                    = (*memAgreementRepo)(nil)
	_ repository.AnswerAppreciationRepository                 = (*memAppreciationRepo)(nil)
)
