package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	b, err := s.projections.UnifiedBalance(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, b)
}

func (s *Server) getTotalIncomes(w http.ResponseWriter, r *http.Request) {
	t, err := s.projections.TotalIncomes(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, t)
}

func (s *Server) getCurrentMonthExpenses(w http.ResponseWriter, r *http.Request) {
	total, err := s.projections.CurrentMonthExpenses(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, map[string]float64{"total": total})
}

func (s *Server) getForecast(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid year: %w", err))
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid month"))
		return
	}

	f, err := s.projections.MonthlyForecast(r.Context(), year, time.Month(month))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, f)
}

func (s *Server) monthsParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("months")
	if raw == "" {
		return 6, nil
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months < 0 {
		return 0, fmt.Errorf("invalid months parameter")
	}
	return months, nil
}

func (s *Server) getDailyProjection(w http.ResponseWriter, r *http.Request) {
	months, err := s.monthsParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	points, err := s.projections.DailyCashFlow(r.Context(), months)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, points)
}

func (s *Server) getMonthlyProjection(w http.ResponseWriter, r *http.Request) {
	months, err := s.monthsParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	points, err := s.projections.GenerateProjection(r.Context(), months)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, points)
}

func (s *Server) getBreakEven(w http.ResponseWriter, r *http.Request) {
	be, err := s.projections.BreakEvenMonth(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, be)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.projections.DashboardStats(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, stats)
}

func (s *Server) getBudgetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.projections.DailyBudgetSummary(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, summary)
}

func (s *Server) getBudgetComparison(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date: %w", err))
		return
	}
	cmp, err := s.projections.CompareBudgetVsSpent(r.Context(), date)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeData(w, http.StatusOK, cmp)
}
