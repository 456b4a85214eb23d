package http

import (
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	teacherHandler *handlers.TeacherHandler,
	operationHandler *handlers.OperationHandler,
	paymentHandler *handlers.PaymentHandler,
	expenseHandler *handlers.ExpenseHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	importHandler *handlers.ImportHandler,
	healthHandler *handlers.HealthHandler,
	hub *realtime.Hub,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Runs after route matching so the path label is the route template
	r.Use(middleware.MetricsMiddleware)

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)

	// Authenticated profile
	meAPI := r.PathPrefix("/api/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// Teachers
	teachersAPI := r.PathPrefix("/api/teachers").Subrouter()
	teachersAPI.Use(authMiddleware.Authenticate)
	teachersAPI.HandleFunc("", teacherHandler.ListTeachers).Methods("GET")
	teachersAPI.HandleFunc("", teacherHandler.CreateTeacher).Methods("POST")
	teachersAPI.HandleFunc("/{id:[0-9]+}", teacherHandler.GetTeacher).Methods("GET")
	teachersAPI.HandleFunc("/{id:[0-9]+}", teacherHandler.UpdateTeacher).Methods("PUT")
	teachersAPI.HandleFunc("/{id:[0-9]+}", teacherHandler.DeleteTeacher).Methods("DELETE")
	teachersAPI.HandleFunc("/{id:[0-9]+}/account", teacherHandler.GetAccount).Methods("GET")

	// Operations
	operationsAPI := r.PathPrefix("/api/operations").Subrouter()
	operationsAPI.Use(authMiddleware.Authenticate)
	operationsAPI.HandleFunc("", operationHandler.ListOperations).Methods("GET")
	operationsAPI.HandleFunc("", operationHandler.CreateOperation).Methods("POST")
	operationsAPI.HandleFunc("/{id:[0-9]+}", operationHandler.GetOperation).Methods("GET")
	operationsAPI.HandleFunc("/{id:[0-9]+}", operationHandler.UpdateOperation).Methods("PUT")
	operationsAPI.HandleFunc("/{id:[0-9]+}", operationHandler.DeleteOperation).Methods("DELETE")

	// Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id:[0-9]+}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id:[0-9]+}", paymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id:[0-9]+}", paymentHandler.DeletePayment).Methods("DELETE")

	// Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id:[0-9]+}", expenseHandler.GetExpense).Methods("GET")
	expensesAPI.HandleFunc("/{id:[0-9]+}", expenseHandler.UpdateExpense).Methods("PUT")
	expensesAPI.HandleFunc("/{id:[0-9]+}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("", dashboardHandler.GetSummary).Methods("GET")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/generate", reportHandler.GenerateReport).Methods("POST")
	reportsAPI.HandleFunc("/pdf", reportHandler.GeneratePDF).Methods("POST")

	// Saved report configs
	savedReportsAPI := r.PathPrefix("/api/saved-reports").Subrouter()
	savedReportsAPI.Use(authMiddleware.Authenticate)
	savedReportsAPI.HandleFunc("", reportHandler.ListSavedReports).Methods("GET")
	savedReportsAPI.HandleFunc("", reportHandler.SaveReport).Methods("POST")
	savedReportsAPI.HandleFunc("/{id:[0-9]+}", reportHandler.GetSavedReport).Methods("GET")
	savedReportsAPI.HandleFunc("/{id:[0-9]+}", reportHandler.DeleteSavedReport).Methods("DELETE")

	// Admin-only: user management and bulk import
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole(services.RoleAdmin))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id:[0-9]+}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id:[0-9]+}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id:[0-9]+}", userHandler.DeleteUser).Methods("DELETE")

	importAPI := r.PathPrefix("/api/import").Subrouter()
	importAPI.Use(authMiddleware.RequireRole(services.RoleAdmin))
	importAPI.HandleFunc("", importHandler.Import).Methods("POST")

	return r
}
