package http

import (
	"net/http"

	"fleet-maintenance/internal/delivery/http/handler"
	"fleet-maintenance/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	vehicleHandler    *handler.VehicleHandler
	programHandler    *handler.ServiceProgramHandler
	scheduleHandler   *handler.ServiceScheduleHandler
	taskHandler       *handler.ServiceTaskHandler
	reminderHandler   *handler.ServiceReminderHandler
	projectionHandler *handler.ReminderProjectionHandler
	auditLogHandler   *handler.AuditLogHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	vehicleHandler *handler.VehicleHandler,
	programHandler *handler.ServiceProgramHandler,
	scheduleHandler *handler.ServiceScheduleHandler,
	taskHandler *handler.ServiceTaskHandler,
	reminderHandler *handler.ServiceReminderHandler,
	projectionHandler *handler.ReminderProjectionHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		vehicleHandler:    vehicleHandler,
		programHandler:    programHandler,
		scheduleHandler:   scheduleHandler,
		taskHandler:       taskHandler,
		reminderHandler:   reminderHandler,
		projectionHandler: projectionHandler,
		auditLogHandler:   auditLogHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Read routes: any authenticated user
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/vehicles", r.vehicleHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", r.vehicleHandler.GetByID).Methods(http.MethodGet)

	protected.HandleFunc("/service-programs", r.programHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/service-programs/{id}", r.programHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/service-programs/{id}/vehicles", r.programHandler.GetAssignments).Methods(http.MethodGet)
	protected.HandleFunc("/service-programs/{id}/schedules", r.scheduleHandler.GetByProgram).Methods(http.MethodGet)

	// Projection endpoint must be registered before the {id} route so
	// "projection" is not parsed as a reminder ID
	protected.HandleFunc("/service-reminders/projection", r.projectionHandler.GetProjections).Methods(http.MethodGet)

	protected.HandleFunc("/service-schedules/{id}", r.scheduleHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/service-schedules/{id}/tasks", r.scheduleHandler.GetTasks).Methods(http.MethodGet)

	protected.HandleFunc("/service-tasks", r.taskHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/service-tasks/{id}", r.taskHandler.GetByID).Methods(http.MethodGet)

	protected.HandleFunc("/service-reminders", r.reminderHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/service-reminders/{id}", r.reminderHandler.GetByID).Methods(http.MethodGet)

	// Write routes: fleet managers and admins
	manage := api.PathPrefix("").Subrouter()
	manage.Use(r.authMiddleware.Authenticate)
	manage.Use(middleware.RequireAdminOrFleetManager)

	manage.HandleFunc("/vehicles", r.vehicleHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/vehicles/{id}", r.vehicleHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/vehicles/{id}", r.vehicleHandler.Delete).Methods(http.MethodDelete)

	manage.HandleFunc("/service-programs", r.programHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/service-programs/{id}", r.programHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/service-programs/{id}", r.programHandler.Delete).Methods(http.MethodDelete)
	manage.HandleFunc("/service-programs/{id}/vehicles", r.programHandler.AssignVehicle).Methods(http.MethodPost)
	manage.HandleFunc("/service-programs/{id}/vehicles/{vehicleId}", r.programHandler.UnassignVehicle).Methods(http.MethodDelete)

	manage.HandleFunc("/service-schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/service-schedules/{id}", r.scheduleHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/service-schedules/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)
	manage.HandleFunc("/service-schedules/{id}/tasks", r.scheduleHandler.AttachTask).Methods(http.MethodPost)
	manage.HandleFunc("/service-schedules/{id}/tasks/{taskId}", r.scheduleHandler.DetachTask).Methods(http.MethodDelete)

	manage.HandleFunc("/service-tasks", r.taskHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/service-tasks/{id}", r.taskHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/service-tasks/{id}", r.taskHandler.Delete).Methods(http.MethodDelete)

	manage.HandleFunc("/service-reminders", r.reminderHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/service-reminders/{id}/complete", r.reminderHandler.Complete).Methods(http.MethodPost)
	manage.HandleFunc("/service-reminders/{id}/cancel", r.reminderHandler.Cancel).Methods(http.MethodPost)
	manage.HandleFunc("/service-reminders/{id}", r.reminderHandler.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
