package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/apereira/fluxo/internal/service"
)

// Server wires the projection and record services to HTTP.
type Server struct {
	projections *service.ProjectionService
	records     *service.RecordService
	maintenance *service.MaintenanceService
	log         *logrus.Logger
}

// New initializes a server over the given services.
func New(projections *service.ProjectionService, records *service.RecordService, maintenance *service.MaintenanceService, log *logrus.Logger) *Server {
	return &Server{projections: projections, records: records, maintenance: maintenance, log: log}
}

// Router builds the API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/balance", s.getBalance).Methods("GET")
	api.HandleFunc("/incomes/total", s.getTotalIncomes).Methods("GET")
	api.HandleFunc("/expenses/current-month", s.getCurrentMonthExpenses).Methods("GET")
	api.HandleFunc("/forecast/{year:[0-9]+}/{month:[0-9]+}", s.getForecast).Methods("GET")
	api.HandleFunc("/projection/daily", s.getDailyProjection).Methods("GET")
	api.HandleFunc("/projection/monthly", s.getMonthlyProjection).Methods("GET")
	api.HandleFunc("/breakeven", s.getBreakEven).Methods("GET")
	api.HandleFunc("/stats", s.getStats).Methods("GET")
	api.HandleFunc("/budget/summary", s.getBudgetSummary).Methods("GET")
	api.HandleFunc("/budget/compare", s.getBudgetComparison).Methods("GET")

	api.HandleFunc("/transactions", s.postTransaction).Methods("POST")
	api.HandleFunc("/transactions/duplicates", s.getDuplicateTransactions).Methods("GET")
	api.HandleFunc("/transactions/{id}", s.deleteTransaction).Methods("DELETE")
	api.HandleFunc("/incomes", s.postIncome).Methods("POST")
	api.HandleFunc("/incomes/{id}", s.deleteIncome).Methods("DELETE")
	api.HandleFunc("/recurring", s.postRecurring).Methods("POST")
	api.HandleFunc("/recurring/{id}", s.deleteRecurring).Methods("DELETE")
	api.HandleFunc("/budgets", s.postBudget).Methods("POST")
	api.HandleFunc("/budgets/{id}", s.deleteBudget).Methods("DELETE")
	api.HandleFunc("/daily-expenses", s.postDailyExpense).Methods("POST")
	api.HandleFunc("/daily-expenses/{id}", s.deleteDailyExpense).Methods("DELETE")

	api.HandleFunc("/maintenance/reset", s.postReset).Methods("POST")

	return r
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	if err := s.maintenance.Reset(r.Context()); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.log.Warn("all records wiped")
	s.writeData(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: err.Error()})
}
