package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-health-consult-platform/config"
	deliveryHttp "go-health-consult-platform/internal/delivery/http"
	"go-health-consult-platform/internal/delivery/http/handler"
	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/internal/infrastructure/cache"
	"go-health-consult-platform/internal/infrastructure/database"
	"go-health-consult-platform/internal/repository"
	"go-health-consult-platform/internal/service"
	"go-health-consult-platform/internal/usecase"
	"go-health-consult-platform/pkg/jwt"
	"go-health-consult-platform/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// migrate applies the schema and seeds the two fixed roles.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.PatientProfile{},
		&entity.DoctorProfile{},
		&entity.BloodPressureRecord{},
		&entity.BloodSugarRecord{},
		&entity.WeightRecord{},
		&entity.SleepRecord{},
		&entity.ExerciseRecord{},
		&entity.FoodRecord{},
		&entity.GlycatedHemoglobinRecord{},
		&entity.DoctorTimeSlot{},
		&entity.ConsultAppointment{},
		&entity.PatientQuestion{},
		&entity.PatientQuestionAnswer{},
		&entity.AnswerAgreement{},
		&entity.AnswerAppreciation{},
		&entity.AuditLog{},
	); err != nil {
		return err
	}

	roles := []entity.Role{
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Licensed medical doctor"},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient, Description: "Patient"},
	}
	for _, role := range roles {
		if err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	timeSlotRepo := repository.NewDoctorTimeSlotRepository()
	appointmentRepo := repository.NewConsultAppointmentRepository()
	questionRepo := repository.NewPatientQuestionRepository()
	answerRepo := repository.NewPatientQuestionAnswerRepository()
	agreementRepo := repository.NewAnswerAgreementRepository()
	appreciationRepo := repository.NewAnswerAppreciationRepository()
	auditRepo := repository.NewAuditLogRepository()

	bloodPressureRepo := repository.NewHealthRecordRepository[entity.BloodPressureRecord]()
	bloodSugarRepo := repository.NewHealthRecordRepository[entity.BloodSugarRecord]()
	weightRepo := repository.NewHealthRecordRepository[entity.WeightRecord]()
	sleepRepo := repository.NewHealthRecordRepository[entity.SleepRecord]()
	exerciseRepo := repository.NewHealthRecordRepository[entity.ExerciseRecord]()
	foodRepo := repository.NewHealthRecordRepository[entity.FoodRecord]()
	hba1cRepo := repository.NewHealthRecordRepository[entity.GlycatedHemoglobinRecord]()

	// Services
	auditService := service.NewAuditService(log, auditRepo)
	slotHoldService := service.NewSlotHoldService(log, redisClient)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, doctorProfileRepo, jwtService, redisClient, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, patientProfileRepo, auditService)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorProfileRepo, auditService)
	appointmentUsecase := usecase.NewConsultAppointmentUsecase(db, log, patientProfileRepo, doctorProfileRepo, timeSlotRepo, appointmentRepo, slotHoldService, auditService)
	questionUsecase := usecase.NewPatientQuestionUsecase(db, log, patientProfileRepo, doctorProfileRepo, questionRepo, answerRepo, agreementRepo, appreciationRepo, auditService)
	agreementUsecase := usecase.NewAnswerAgreementUsecase(db, log, doctorProfileRepo, answerRepo, agreementRepo, auditService)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	questionHandler := handler.NewQuestionHandler(questionUsecase, agreementUsecase, customValidator)

	recordHandlers := deliveryHttp.RecordHandlers{
		BloodPressure:      newRecordHandler(db, log, entity.KindBloodPressure, bloodPressureRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.BloodPressureBuilder(customValidator)),
		BloodSugar:         newRecordHandler(db, log, entity.KindBloodSugar, bloodSugarRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.BloodSugarBuilder(customValidator)),
		Weight:             newRecordHandler(db, log, entity.KindWeight, weightRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.WeightBuilder(customValidator)),
		Sleep:              newRecordHandler(db, log, entity.KindSleep, sleepRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.SleepBuilder(customValidator)),
		Exercise:           newRecordHandler(db, log, entity.KindExercise, exerciseRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.ExerciseBuilder(customValidator)),
		Food:               newRecordHandler(db, log, entity.KindFood, foodRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.FoodBuilder(customValidator)),
		GlycatedHemoglobin: newRecordHandler(db, log, entity.KindGlycatedHemoglobin, hba1cRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, auditService, customValidator, handler.GlycatedHemoglobinBuilder(customValidator)),
	}

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Router
	router := deliveryHttp.NewRouter(authHandler, patientHandler, doctorHandler, appointmentHandler, questionHandler, recordHandlers, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// newRecordHandler wires the access usecase, lifecycle usecase, and handler
// for one record kind. Each kind repeats the same stack over its own types.
func newRecordHandler[R entity.HealthRecord](
	db *gorm.DB,
	log *logrus.Logger,
	kind entity.HealthRecordKind,
	recordRepo domainRepo.HealthRecordRepository[R],
	patientRepo domainRepo.PatientProfileRepository,
	doctorRepo domainRepo.DoctorProfileRepository,
	appointmentRepo domainRepo.ConsultAppointmentRepository,
	auditService service.AuditService,
	customValidator *validator.CustomValidator,
	build func(r *http.Request) (func(patient *entity.PatientProfile) *R, error),
) *handler.HealthRecordHandler[R] {
	accessUsecase := usecase.NewRecordAccessUsecase(db, log, recordRepo, patientRepo, doctorRepo, appointmentRepo)
	recordUsecase := usecase.NewHealthRecordUsecase(db, log, kind, recordRepo, patientRepo, doctorRepo, appointmentRepo, accessUsecase, auditService)
	return handler.NewHealthRecordHandler(recordUsecase, customValidator, build)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
