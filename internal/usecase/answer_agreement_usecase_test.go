package usecase

import (
	"errors"
	"testing"

	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
)

type agreementFixture struct {
	doctors    *memDoctorRepo
	answers    *memAnswerRepo
	agreements *memAgreementRepo
	uc         AnswerAgreementUsecase

	authorUserID uuid.UUID
	author       *entity.DoctorProfile
	answer       *entity.PatientQuestionAnswer
}

func newAgreementFixture() *agreementFixture {
	f := &agreementFixture{
		doctors:    newMemDoctorRepo(),
		answers:    newMemAnswerRepo(),
		agreements: newMemAgreementRepo(),
	}

	f.authorUserID = uuid.New()
	f.author = &entity.DoctorProfile{
		ID:        uuid.New(),
		UserID:    f.authorUserID,
		FirstName: "Nina",
		LastName:  "Osei",
		AvatarURL: "https://cdn.example.com/nina.png",
	}
	f.doctors.add(f.author)
	f.agreements.setAvatar(f.author.ID, f.author.AvatarURL)

	f.answer = &entity.PatientQuestionAnswer{
		ID:                uuid.New(),
		PatientQuestionID: uuid.New(),
		DoctorID:          f.author.ID,
		Content:           "Reduce sodium intake and re-measure in two weeks.",
	}
	f.answers.add(f.answer)

	f.uc = NewAnswerAgreementUsecase(nil, testLogger(), f.doctors, f.answers, f.agreements, noopAuditService{})
	return f
}

func (f *agreementFixture) addDoctor(avatar string) uuid.UUID {
	userID := uuid.New()
	doctor := &entity.DoctorProfile{
		ID:        uuid.New(),
		UserID:    userID,
		AvatarURL: avatar,
	}
	f.doctors.add(doctor)
	f.agreements.setAvatar(doctor.ID, avatar)
	return userID
}

func TestCreateAgreementAggregatesMostRecentFirst(t *testing.T) {
	f := newAgreementFixture()

	first := f.addDoctor("https://cdn.example.com/first.png")
	second := f.addDoctor("https://cdn.example.com/second.png")

	summary, err := f.uc.CreateAgreement(doctorCtx(first), f.answer.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalAgreedDoctorCount != 1 {
		t.Errorf("expected count 1, got %d", summary.TotalAgreedDoctorCount)
	}

	summary, err = f.uc.CreateAgreement(doctorCtx(second), f.answer.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalAgreedDoctorCount != 2 {
		t.Errorf("expected count 2, got %d", summary.TotalAgreedDoctorCount)
	}
	if len(summary.AgreedDoctorAvatars) != 2 ||
		summary.AgreedDoctorAvatars[0] != "https://cdn.example.com/second.png" ||
		summary.AgreedDoctorAvatars[1] != "https://cdn.example.com/first.png" {
		t.Errorf("expected avatars most recent first, got %v", summary.AgreedDoctorAvatars)
	}
}

func TestCreateAgreementTwiceRejected(t *testing.T) {
	f := newAgreementFixture()

	doctorUserID := f.addDoctor("")
	if _, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), f.answer.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), f.answer.ID, nil)

	var validation *apperror.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateAgreementOwnAnswerRejected(t *testing.T) {
	f := newAgreementFixture()

	_, err := f.uc.CreateAgreement(doctorCtx(f.authorUserID), f.answer.ID, nil)

	var validation *apperror.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateAgreementAnswerMissing(t *testing.T) {
	f := newAgreementFixture()

	doctorUserID := f.addDoctor("")
	_, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), uuid.New(), nil)

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCancelAgreementUpdatesAggregate(t *testing.T) {
	f := newAgreementFixture()

	keeper := f.addDoctor("https://cdn.example.com/keeper.png")
	canceler := f.addDoctor("https://cdn.example.com/canceler.png")

	if _, err := f.uc.CreateAgreement(doctorCtx(keeper), f.answer.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.CreateAgreement(doctorCtx(canceler), f.answer.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := f.uc.CancelAgreement(doctorCtx(canceler), f.answer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalAgreedDoctorCount != 1 {
		t.Errorf("expected count 1 after cancel, got %d", summary.TotalAgreedDoctorCount)
	}
	if len(summary.AgreedDoctorAvatars) != 1 || summary.AgreedDoctorAvatars[0] != "https://cdn.example.com/keeper.png" {
		t.Errorf("expected only the remaining doctor's avatar, got %v", summary.AgreedDoctorAvatars)
	}
}

func TestCancelSoleAgreementEmptiesAggregate(t *testing.T) {
	f := newAgreementFixture()

	doctorUserID := f.addDoctor("https://cdn.example.com/only.png")
	if _, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), f.answer.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := f.uc.CancelAgreement(doctorCtx(doctorUserID), f.answer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalAgreedDoctorCount != 0 {
		t.Errorf("expected count 0 after canceling the only agreement, got %d", summary.TotalAgreedDoctorCount)
	}
	if summary.AgreedDoctorAvatars == nil {
		t.Fatalf("expected an empty avatar list, got nil")
	}
	if len(summary.AgreedDoctorAvatars) != 0 {
		t.Errorf("expected no avatars, got %v", summary.AgreedDoctorAvatars)
	}
}

func TestReAgreeAfterCancel(t *testing.T) {
	f := newAgreementFixture()

	doctorUserID := f.addDoctor("")
	if _, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), f.answer.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.CancelAgreement(doctorCtx(doctorUserID), f.answer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := f.uc.CreateAgreement(doctorCtx(doctorUserID), f.answer.ID, nil)
	if err != nil {
		t.Fatalf("expected re-agree to succeed, got %v", err)
	}
	if summary.TotalAgreedDoctorCount != 1 {
		t.Errorf("expected count 1, got %d", summary.TotalAgreedDoctorCount)
	}
}

func TestCancelAgreementWithoutAgreement(t *testing.T) {
	f := newAgreementFixture()

	doctorUserID := f.addDoctor("")
	_, err := f.uc.CancelAgreement(doctorCtx(doctorUserID), f.answer.ID)

	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
