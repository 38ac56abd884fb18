package http

import (
	"net/http"

	"go-health-consult-platform/internal/delivery/http/handler"
	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	questionHandler    *handler.QuestionHandler
	recordHandlers     RecordHandlers
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

// RecordHandlers bundles the seven per-kind record handlers so the router
// constructor stays readable.
type RecordHandlers struct {
	BloodPressure      *handler.HealthRecordHandler[entity.BloodPressureRecord]
	BloodSugar         *handler.HealthRecordHandler[entity.BloodSugarRecord]
	Weight             *handler.HealthRecordHandler[entity.WeightRecord]
	Sleep              *handler.HealthRecordHandler[entity.SleepRecord]
	Exercise           *handler.HealthRecordHandler[entity.ExerciseRecord]
	Food               *handler.HealthRecordHandler[entity.FoodRecord]
	GlycatedHemoglobin *handler.HealthRecordHandler[entity.GlycatedHemoglobinRecord]
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	questionHandler *handler.QuestionHandler,
	recordHandlers RecordHandlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		questionHandler:    questionHandler,
		recordHandlers:     recordHandlers,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Patient profile (patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Doctor's own profile (doctor only). Registered before the doctor
	// directory so /doctors/me never falls into the /doctors/{id} route.
	doctorsMe := api.PathPrefix("/doctors/me").Subrouter()
	doctorsMe.Use(r.authMiddleware.Authenticate)
	doctorsMe.Use(middleware.RequireDoctor)
	doctorsMe.HandleFunc("", r.doctorHandler.GetMyProfile).Methods(http.MethodGet)
	doctorsMe.HandleFunc("", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Doctor directory (any authenticated user)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}/time-slots", r.appointmentHandler.GetDoctorTimeSlots).Methods(http.MethodGet)

	// Time slot management (doctor only)
	timeSlots := api.PathPrefix("/time-slots").Subrouter()
	timeSlots.Use(r.authMiddleware.Authenticate)
	timeSlots.Use(middleware.RequireDoctor)
	timeSlots.HandleFunc("", r.appointmentHandler.CreateTimeSlot).Methods(http.MethodPost)
	timeSlots.HandleFunc("/{id}", r.appointmentHandler.DeleteTimeSlot).Methods(http.MethodDelete)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)

	appointmentsPatient := api.PathPrefix("/appointments").Subrouter()
	appointmentsPatient.Use(r.authMiddleware.Authenticate)
	appointmentsPatient.Use(middleware.RequirePatient)
	appointmentsPatient.HandleFunc("", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	appointmentsPatient.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	appointmentsDoctor := api.PathPrefix("/appointments").Subrouter()
	appointmentsDoctor.Use(r.authMiddleware.Authenticate)
	appointmentsDoctor.Use(middleware.RequireDoctor)
	appointmentsDoctor.HandleFunc("/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Q&A board
	questions := api.PathPrefix("/questions").Subrouter()
	questions.Use(r.authMiddleware.Authenticate)
	questions.HandleFunc("", r.questionHandler.GetQuestions).Methods(http.MethodGet)
	questions.HandleFunc("/{id}/answers", r.questionHandler.GetAnswers).Methods(http.MethodGet)

	questionsPatient := api.PathPrefix("/questions").Subrouter()
	questionsPatient.Use(r.authMiddleware.Authenticate)
	questionsPatient.Use(middleware.RequirePatient)
	questionsPatient.HandleFunc("", r.questionHandler.CreateQuestion).Methods(http.MethodPost)
	questionsPatient.HandleFunc("/{id}", r.questionHandler.DeleteQuestion).Methods(http.MethodDelete)

	questionsDoctor := api.PathPrefix("/questions").Subrouter()
	questionsDoctor.Use(r.authMiddleware.Authenticate)
	questionsDoctor.Use(middleware.RequireDoctor)
	questionsDoctor.HandleFunc("/{id}/answers", r.questionHandler.CreateAnswer).Methods(http.MethodPost)

	answersDoctor := api.PathPrefix("/answers").Subrouter()
	answersDoctor.Use(r.authMiddleware.Authenticate)
	answersDoctor.Use(middleware.RequireDoctor)
	answersDoctor.HandleFunc("/{id}", r.questionHandler.DeleteAnswer).Methods(http.MethodDelete)
	answersDoctor.HandleFunc("/{id}/agreements", r.questionHandler.CreateAgreement).Methods(http.MethodPost)
	answersDoctor.HandleFunc("/{id}/agreements", r.questionHandler.CancelAgreement).Methods(http.MethodDelete)

	answersPatient := api.PathPrefix("/answers").Subrouter()
	answersPatient.Use(r.authMiddleware.Authenticate)
	answersPatient.Use(middleware.RequirePatient)
	answersPatient.HandleFunc("/{id}/appreciations", r.questionHandler.CreateAppreciation).Methods(http.MethodPost)

	// Health records. Reads are open to both roles (the usecase enforces the
	// appointment gate); writes are patient only.
	records := api.PathPrefix("/records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)

	recordsPatient := api.PathPrefix("/records").Subrouter()
	recordsPatient.Use(r.authMiddleware.Authenticate)
	recordsPatient.Use(middleware.RequirePatient)

	registerRecordRoutes(records, recordsPatient, "/blood-pressure", r.recordHandlers.BloodPressure)
	registerRecordRoutes(records, recordsPatient, "/blood-sugar", r.recordHandlers.BloodSugar)
	registerRecordRoutes(records, recordsPatient, "/weight", r.recordHandlers.Weight)
	registerRecordRoutes(records, recordsPatient, "/sleep", r.recordHandlers.Sleep)
	registerRecordRoutes(records, recordsPatient, "/exercise", r.recordHandlers.Exercise)
	registerRecordRoutes(records, recordsPatient, "/food", r.recordHandlers.Food)
	registerRecordRoutes(records, recordsPatient, "/glycated-hemoglobin", r.recordHandlers.GlycatedHemoglobin)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func registerRecordRoutes[R entity.HealthRecord](
	records *mux.Router,
	recordsPatient *mux.Router,
	path string,
	h *handler.HealthRecordHandler[R],
) {
	recordsPatient.HandleFunc(path, h.Create).Methods(http.MethodPost)
	recordsPatient.HandleFunc(path+"/{id}", h.Delete).Methods(http.MethodDelete)
	records.HandleFunc(path, h.List).Methods(http.MethodGet)
	records.HandleFunc(path+"/{id}", h.Get).Methods(http.MethodGet)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
