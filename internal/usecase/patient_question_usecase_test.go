package usecase

import (
	"errors"
	"testing"

	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
)

type questionFixture struct {
	patients      *memPatientRepo
	doctors       *memDoctorRepo
	questions     *memQuestionRepo
	answers       *memAnswerRepo
	agreements    *memAgreementRepo
	appreciations *memAppreciationRepo
	uc            PatientQuestionUsecase

	askerUserID uuid.UUID
	asker       *entity.PatientProfile
}

func newQuestionFixture() *questionFixture {
	f := &questionFixture{
		patients:      newMemPatientRepo(),
		doctors:       newMemDoctorRepo(),
		questions:     newMemQuestionRepo(),
		answers:       newMemAnswerRepo(),
		agreements:    newMemAgreementRepo(),
		appreciations: newMemAppreciationRepo(),
	}

	f.askerUserID = uuid.New()
	f.asker = &entity.PatientProfile{ID: uuid.New(), UserID: f.askerUserID, FirstName: "Ava", LastName: "Stone"}
	f.patients.add(f.asker)

	f.uc = NewPatientQuestionUsecase(nil, testLogger(), f.patients, f.doctors, f.questions, f.answers, f.agreements, f.appreciations, noopAuditService{})
	return f
}

func (f *questionFixture) addDoctor() (uuid.UUID, *entity.DoctorProfile) {
	userID := uuid.New()
	doctor := &entity.DoctorProfile{ID: uuid.New(), UserID: userID}
	f.doctors.add(doctor)
	return userID, doctor
}

func (f *questionFixture) addQuestion(askerID uuid.UUID) *entity.PatientQuestion {
	question := &entity.PatientQuestion{
		ID:               uuid.New(),
		AskerID:          askerID,
		Content:          "My morning readings keep climbing, should I adjust my dose?",
		MedicalSpecialty: "endocrinology",
	}
	f.questions.add(question)
	return question
}

func (f *questionFixture) addAnswer(questionID, doctorID uuid.UUID) *entity.PatientQuestionAnswer {
	answer := &entity.PatientQuestionAnswer{
		ID:                uuid.New(),
		PatientQuestionID: questionID,
		DoctorID:          doctorID,
		Content:           "Do not change the dose without a fasting panel first.",
	}
	f.answers.add(answer)
	return answer
}

func TestCreateQuestion(t *testing.T) {
	f := newQuestionFixture()

	question, err := f.uc.CreateQuestion(patientCtx(f.askerUserID), &dto.CreateQuestionRequest{
		Content:          "Is a resting heart rate of 48 normal for a runner?",
		MedicalSpecialty: "cardiology",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.AskerID != f.asker.ID {
		t.Errorf("expected asker %s, got %s", f.asker.ID, question.AskerID)
	}
}

func TestCreateAnswerOncePerDoctor(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	doctorUserID, _ := f.addDoctor()
	if _, err := f.uc.CreateAnswer(doctorCtx(doctorUserID), question.ID, &dto.CreateAnswerRequest{Content: "First take."}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.uc.CreateAnswer(doctorCtx(doctorUserID), question.ID, &dto.CreateAnswerRequest{Content: "Second take."})
	var validation *apperror.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// A different doctor can still answer.
	otherUserID, _ := f.addDoctor()
	if _, err := f.uc.CreateAnswer(doctorCtx(otherUserID), question.ID, &dto.CreateAnswerRequest{Content: "Another view."}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateAnswerQuestionMissing(t *testing.T) {
	f := newQuestionFixture()

	doctorUserID, _ := f.addDoctor()
	_, err := f.uc.CreateAnswer(doctorCtx(doctorUserID), uuid.New(), &dto.CreateAnswerRequest{Content: "Into the void."})

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteQuestionCascades(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	_, authorA := f.addDoctor()
	_, authorB := f.addDoctor()
	answerA := f.addAnswer(question.ID, authorA.ID)
	answerB := f.addAnswer(question.ID, authorB.ID)

	f.agreements.Create(nil, nil, &entity.AnswerAgreement{AnswerID: answerA.ID, AgreedDoctorID: authorB.ID})
	f.agreements.Create(nil, nil, &entity.AnswerAgreement{AnswerID: answerB.ID, AgreedDoctorID: authorA.ID})
	f.appreciations.add(&entity.AnswerAppreciation{ID: uuid.New(), AnswerID: answerA.ID, PatientID: f.asker.ID})

	if err := f.uc.DeleteQuestion(patientCtx(f.askerUserID), question.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.questions.byID) != 0 {
		t.Errorf("expected question removed, %d left", len(f.questions.byID))
	}
	if len(f.answers.byID) != 0 {
		t.Errorf("expected answers removed, %d left", len(f.answers.byID))
	}
	if len(f.agreements.byID) != 0 {
		t.Errorf("expected agreements removed, %d left", len(f.agreements.byID))
	}
	if len(f.appreciations.byID) != 0 {
		t.Errorf("expected appreciations removed, %d left", len(f.appreciations.byID))
	}
}

func TestDeleteQuestionNotAsker(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	otherUserID := uuid.New()
	f.patients.add(&entity.PatientProfile{ID: uuid.New(), UserID: otherUserID})

	err := f.uc.DeleteQuestion(patientCtx(otherUserID), question.ID)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if len(f.questions.byID) != 1 {
		t.Errorf("question must survive a denied delete")
	}
}

func TestDeleteQuestionMissing(t *testing.T) {
	f := newQuestionFixture()

	err := f.uc.DeleteQuestion(patientCtx(f.askerUserID), uuid.New())

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteAnswerCascadesOnlyItsOwnDependents(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	authorUserID, author := f.addDoctor()
	_, other := f.addDoctor()
	answer := f.addAnswer(question.ID, author.ID)
	surviving := f.addAnswer(question.ID, other.ID)

	f.agreements.Create(nil, nil, &entity.AnswerAgreement{AnswerID: answer.ID, AgreedDoctorID: other.ID})
	f.agreements.Create(nil, nil, &entity.AnswerAgreement{AnswerID: surviving.ID, AgreedDoctorID: author.ID})
	f.appreciations.add(&entity.AnswerAppreciation{ID: uuid.New(), AnswerID: answer.ID, PatientID: f.asker.ID})

	if err := f.uc.DeleteAnswer(doctorCtx(authorUserID), answer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := f.answers.byID[answer.ID]; ok {
		t.Errorf("expected answer removed")
	}
	if _, ok := f.answers.byID[surviving.ID]; !ok {
		t.Errorf("other doctor's answer must survive")
	}
	if count, _ := f.agreements.CountByAnswerID(nil, nil, answer.ID); count != 0 {
		t.Errorf("expected agreements on deleted answer removed, %d left", count)
	}
	if count, _ := f.agreements.CountByAnswerID(nil, nil, surviving.ID); count != 1 {
		t.Errorf("agreement on the surviving answer must remain, got %d", count)
	}
	if len(f.appreciations.byID) != 0 {
		t.Errorf("expected appreciations on deleted answer removed")
	}
}

func TestDeleteAnswerNotAuthor(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	_, author := f.addDoctor()
	answer := f.addAnswer(question.ID, author.ID)

	otherUserID, _ := f.addDoctor()
	err := f.uc.DeleteAnswer(doctorCtx(otherUserID), answer.ID)

	var authz *apperror.AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestCreateAppreciationOncePerPatient(t *testing.T) {
	f := newQuestionFixture()
	question := f.addQuestion(f.asker.ID)

	_, author := f.addDoctor()
	answer := f.addAnswer(question.ID, author.ID)

	note := "Thank you, this helped a lot."
	if err := f.uc.CreateAppreciation(patientCtx(f.askerUserID), answer.ID, &dto.CreateAppreciationRequest{Content: &note}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := f.uc.CreateAppreciation(patientCtx(f.askerUserID), answer.ID, &dto.CreateAppreciationRequest{})
	var validation *apperror.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateAppreciationAnswerMissing(t *testing.T) {
	f := newQuestionFixture()

	err := f.uc.CreateAppreciation(patientCtx(f.askerUserID), uuid.New(), &dto.CreateAppreciationRequest{})

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
