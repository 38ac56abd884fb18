package usecase

import (
	"context"
	"fmt"
	"time"

	"go-health-consult-platform/internal/converter"
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/internal/service"
	"go-health-consult-platform/pkg/apperror"
	"go-health-consult-platform/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, request *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, request *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context, request *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientProfileRepository
	doctorRepo   repository.DoctorProfileRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

// RegisterPatient creates the auth user and the patient profile in one
// transaction, so a profile can never exist without its user row.
func (u *authUsecase) RegisterPatient(ctx context.Context, request *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	birthDate, err := time.Parse("2006-01-02", request.BirthDate)
	if err != nil {
		return nil, apperror.NewValidation("invalid birth date format, use YYYY-MM-DD")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	user := &entity.User{
		Email:    request.Email,
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDPatient,
		IsActive: &active,
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperror.NewValidation("email already exists")
		}
		if isForeignKeyError(err, "role") {
			return nil, apperror.NewValidation("role does not exist")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		UserID:        user.ID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		BirthDate:     birthDate,
		Gender:        request.Gender,
		HeightValueCm: decimal.NewFromFloat(request.HeightValueCm),
	}
	if err := u.patientRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Patient registered: user=%s", user.ID)
	user.Role = entity.Role{ID: entity.RoleIDPatient, RoleName: entity.RolePatient}
	return converter.UserToResponse(user), nil
}

// RegisterDoctor mirrors RegisterPatient for the doctor role. The STR
// number is the medical license and must be unique platform-wide.
func (u *authUsecase) RegisterDoctor(ctx context.Context, request *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	careerStartAt, err := time.Parse("2006-01-02", request.CareerStartAt)
	if err != nil {
		return nil, apperror.NewValidation("invalid career start date format, use YYYY-MM-DD")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	user := &entity.User{
		Email:    request.Email,
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDDoctor,
		IsActive: &active,
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperror.NewValidation("email already exists")
		}
		if isForeignKeyError(err, "role") {
			return nil, apperror.NewValidation("role does not exist")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:        user.ID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		AvatarURL:     request.AvatarURL,
		STRNumber:     request.STRNumber,
		Specialties:   request.Specialties,
		CareerStartAt: careerStartAt,
		Biography:     request.Biography,
	}
	if err := u.doctorRepo.Create(ctx, tx, profile); err != nil {
		if isDuplicateKeyError(err, "str_number") {
			return nil, apperror.NewValidation("STR number already exists")
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor registered: user=%s", user.ID)
	user.Role = entity.Role{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, request *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, request.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAuthorization("invalid email or password")
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, apperror.NewAuthorization("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, apperror.NewAuthorization("invalid email or password")
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

// Logout revokes the current session's access and refresh tokens by
// deleting their Redis keys. The JWTs themselves stay valid until expiry
// but the middleware rejects them once the keys are gone.
func (u *authUsecase) Logout(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return apperror.NewAuthorization("requester identity missing")
	}
	tokenID, ok := middleware.GetTokenIDFromContext(ctx)
	if !ok {
		return apperror.NewAuthorization("token identity missing")
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Refresh tokens issued alongside this access token carry their own
	// ids, so revoke every refresh token the user holds.
	refreshPattern := fmt.Sprintf("refresh_token:%s:*", userID.String())
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to list refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionUserLogout, "user", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// RefreshToken rotates the session: the presented refresh token is
// consumed and a fresh access/refresh pair is issued.
func (u *authUsecase) RefreshToken(ctx context.Context, request *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(request.RefreshToken)
	if err != nil {
		return nil, apperror.NewAuthorization("invalid or expired token")
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, apperror.NewAuthorization("invalid or expired token")
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, apperror.NewAuthorization("token has been revoked")
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("user does not exist")
	}

	return converter.UserToResponse(user), nil
}

// issueTokens generates an access/refresh pair and registers both in Redis
// keyed by user and token id, which is what makes later revocation work.
func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
