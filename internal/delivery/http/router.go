package http

import (
	"net/http"

	"pasi-clinic-backend/internal/delivery/http/handler"
	"pasi-clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	invoiceHandler   *handler.InvoiceHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	invoiceHandler *handler.InvoiceHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		invoiceHandler:   invoiceHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/register", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below the guard requires a signed-in staff member
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Dashboard
	protected.HandleFunc("/dashboard", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Invoices (create and read only, invoices are immutable)
	protected.HandleFunc("/invoices", r.invoiceHandler.CreateInvoice).Methods(http.MethodPost)
	protected.HandleFunc("/invoices", r.invoiceHandler.ListInvoices).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id}", r.invoiceHandler.GetInvoice).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
