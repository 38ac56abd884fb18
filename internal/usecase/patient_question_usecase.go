package usecase

import (
	"context"

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

// PatientQuestionUsecase covers the asynchronous Q&A board: patients ask
// questions and thank doctors, doctors answer. Deletions are soft and
// cascade top-down so no agreement or appreciation ever outlives the
// content it refers to.
type PatientQuestionUsecase interface {
	CreateQuestion(ctx context.Context, request *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetMyQuestions(ctx context.Context) (*dto.QuestionListResponse, error)
	GetQuestionsBySpecialty(ctx context.Context, specialty string) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
	CreateAnswer(ctx context.Context, questionID uuid.UUID, request *dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
	GetAnswers(ctx context.Context, questionID uuid.UUID) (*dto.AnswerListResponse, error)
	DeleteAnswer(ctx context.Context, answerID uuid.UUID) error
	CreateAppreciation(ctx context.Context, answerID uuid.UUID, request *dto.CreateAppreciationRequest) error
}

type patientQuestionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientProfileRepository
	doctorRepo       repository.DoctorProfileRepository
	questionRepo     repository.PatientQuestionRepository
	answerRepo       repository.PatientQuestionAnswerRepository
	agreementRepo    repository.AnswerAgreementRepository
	appreciationRepo repository.AnswerAppreciationRepository
	auditService     service.AuditService
}

func NewPatientQuestionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	questionRepo repository.PatientQuestionRepository,
	answerRepo repository.PatientQuestionAnswerRepository,
	agreementRepo repository.AnswerAgreementRepository,
	appreciationRepo repository.AnswerAppreciationRepository,
	auditService service.AuditService,
) PatientQuestionUsecase {
	return &patientQuestionUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		questionRepo:     questionRepo,
		answerRepo:       answerRepo,
		agreementRepo:    agreementRepo,
		appreciationRepo: appreciationRepo,
		auditService:     auditService,
	}
}

func (u *patientQuestionUsecase) CreateQuestion(ctx context.Context, request *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return nil, err
	}

	question := &entity.PatientQuestion{
		AskerID:          patient.ID,
		Content:          request.Content,
		MedicalSpecialty: request.MedicalSpecialty,
	}
	if err := u.questionRepo.Create(ctx, u.db, question); err != nil {
		u.log.Warnf("Failed to create question for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionQuestionCreate, "patient_question", question.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Question created: id=%s, asker=%s", question.ID, patient.ID)
	return converter.QuestionToResponse(question), nil
}

func (u *patientQuestionUsecase) GetMyQuestions(ctx context.Context) (*dto.QuestionListResponse, error) {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := u.questionRepo.FindByAskerID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list questions for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.QuestionListResponse{
		Questions: converter.QuestionsToResponses(questions),
		Total:     len(questions),
	}, nil
}

func (u *patientQuestionUsecase) GetQuestionsBySpecialty(ctx context.Context, specialty string) (*dto.QuestionListResponse, error) {
	questions, err := u.questionRepo.FindBySpecialty(ctx, u.db, specialty)
	if err != nil {
		u.log.Warnf("Failed to list questions for specialty %s: %+v", specialty, err)
		return nil, err
	}

	return &dto.QuestionListResponse{
		Questions: converter.QuestionsToResponses(questions),
		Total:     len(questions),
	}, nil
}

// DeleteQuestion soft-deletes a question the requester asked, cascading
// through its answers and their agreements and appreciations. The cascade
// runs leaf-first so a partial failure never leaves an agreement pointing
// at an already-deleted answer.
func (u *patientQuestionUsecase) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return err
	}

	question, err := u.questionRepo.FindByID(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question %s: %+v", questionID, err)
		return err
	}
	if question == nil {
		return apperror.NewNotFound("question does not exist")
	}
	if question.AskerID != patient.ID {
		return apperror.NewAuthorization("question does not belong to the requester")
	}

	answerIDs, err := u.answerRepo.FindIDsByQuestionID(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to list answer ids for question %s: %+v", questionID, err)
		return err
	}

	if len(answerIDs) > 0 {
		if _, err := u.agreementRepo.DeleteByAnswerIDs(ctx, u.db, answerIDs); err != nil {
			u.log.Warnf("Failed to cascade agreements for question %s: %+v", questionID, err)
			return err
		}
		if _, err := u.appreciationRepo.DeleteByAnswerIDs(ctx, u.db, answerIDs); err != nil {
			u.log.Warnf("Failed to cascade appreciations for question %s: %+v", questionID, err)
			return err
		}
		if _, err := u.answerRepo.DeleteByQuestionID(ctx, u.db, questionID); err != nil {
			u.log.Warnf("Failed to cascade answers for question %s: %+v", questionID, err)
			return err
		}
	}

	affected, err := u.questionRepo.Delete(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to delete question %s: %+v", questionID, err)
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("question does not exist")
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionQuestionDelete, "patient_question", questionID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Question deleted: id=%s, asker=%s", questionID, patient.ID)
	return nil
}

// CreateAnswer lets a doctor answer a question. At most one answer per
// doctor per question.
func (u *patientQuestionUsecase) CreateAnswer(ctx context.Context, questionID uuid.UUID, request *dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	doctor, err := u.requesterDoctor(ctx)
	if err != nil {
		return nil, err
	}

	question, err := u.questionRepo.FindByID(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question %s: %+v", questionID, err)
		return nil, err
	}
	if question == nil {
		return nil, apperror.NewNotFound("question does not exist")
	}

	existing, err := u.answerRepo.FindByQuestionIDAndDoctorID(ctx, u.db, questionID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing answer: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("already answered this question")
	}

	answer := &entity.PatientQuestionAnswer{
		PatientQuestionID: questionID,
		DoctorID:          doctor.ID,
		Content:           request.Content,
	}
	if err := u.answerRepo.Create(ctx, u.db, answer); err != nil {
		u.log.Warnf("Failed to create answer for question %s: %+v", questionID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAnswerCreate, "patient_question_answer", answer.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Answer created: id=%s, question=%s, doctor=%s", answer.ID, questionID, doctor.ID)
	return converter.AnswerToResponse(answer), nil
}

func (u *patientQuestionUsecase) GetAnswers(ctx context.Context, questionID uuid.UUID) (*dto.AnswerListResponse, error) {
	question, err := u.questionRepo.FindByID(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question %s: %+v", questionID, err)
		return nil, err
	}
	if question == nil {
		return nil, apperror.NewNotFound("question does not exist")
	}

	answers, err := u.answerRepo.FindByQuestionID(ctx, u.db, questionID)
	if err != nil {
		u.log.Warnf("Failed to list answers for question %s: %+v", questionID, err)
		return nil, err
	}

	return &dto.AnswerListResponse{
		Answers: converter.AnswersToResponses(answers),
		Total:   len(answers),
	}, nil
}

// DeleteAnswer soft-deletes the requesting doctor's own answer along with
// every agreement and appreciation attached to it.
func (u *patientQuestionUsecase) DeleteAnswer(ctx context.Context, answerID uuid.UUID) error {
	doctor, err := u.requesterDoctor(ctx)
	if err != nil {
		return err
	}

	answer, err := u.answerRepo.FindByID(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to find answer %s: %+v", answerID, err)
		return err
	}
	if answer == nil {
		return apperror.NewNotFound("answer does not exist")
	}
	if answer.DoctorID != doctor.ID {
		return apperror.NewAuthorization("answer does not belong to the requester")
	}

	answerIDs := []uuid.UUID{answerID}
	if _, err := u.agreementRepo.DeleteByAnswerIDs(ctx, u.db, answerIDs); err != nil {
		u.log.Warnf("Failed to cascade agreements for answer %s: %+v", answerID, err)
		return err
	}
	if _, err := u.appreciationRepo.DeleteByAnswerIDs(ctx, u.db, answerIDs); err != nil {
		u.log.Warnf("Failed to cascade appreciations for answer %s: %+v", answerID, err)
		return err
	}

	affected, err := u.answerRepo.Delete(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to delete answer %s: %+v", answerID, err)
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("answer does not exist")
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAnswerDelete, "patient_question_answer", answerID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Answer deleted: id=%s, doctor=%s", answerID, doctor.ID)
	return nil
}

// CreateAppreciation records a patient's one-time thank-you on an answer.
func (u *patientQuestionUsecase) CreateAppreciation(ctx context.Context, answerID uuid.UUID, request *dto.CreateAppreciationRequest) error {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return err
	}

	answer, err := u.answerRepo.FindByID(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to find answer %s: %+v", answerID, err)
		return err
	}
	if answer == nil {
		return apperror.NewNotFound("answer does not exist")
	}

	existing, err := u.appreciationRepo.FindByAnswerIDAndPatientID(ctx, u.db, answerID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing appreciation: %+v", err)
		return err
	}
	if existing != nil {
		return apperror.NewValidation("already appreciated this answer")
	}

	appreciation := &entity.AnswerAppreciation{
		AnswerID:  answerID,
		PatientID: patient.ID,
		Content:   request.Content,
	}
	if err := u.appreciationRepo.Create(ctx, u.db, appreciation); err != nil {
		if isDuplicateKeyError(err, "idx_appreciation_answer_patient") {
			return apperror.NewValidation("already appreciated this answer")
		}
		u.log.Warnf("Failed to create appreciation for answer %s: %+v", answerID, err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppreciationCreate, "answer_appreciation", appreciation.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appreciation created: answer=%s, patient=%s", answerID, patient.ID)
	return nil
}

func (u *patientQuestionUsecase) requesterPatient(ctx context.Context) (*entity.PatientProfile, error) {
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

func (u *patientQuestionUsecase) requesterDoctor(ctx context.Context) (*entity.DoctorProfile, error) {
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
