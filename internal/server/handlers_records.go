package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/apereira/fluxo/internal/service"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type transactionBody struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	ImportHash  string  `json:"importHash"`
}

func (s *Server) postTransaction(w http.ResponseWriter, r *http.Request) {
	var body transactionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date: %w", err))
		return
	}
	t, err := s.records.AddTransaction(r.Context(), service.TransactionInput{
		Date:        date,
		Description: body.Description,
		Amount:      body.Amount,
		Type:        body.Type,
		Category:    body.Category,
		ImportHash:  body.ImportHash,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusCreated, map[string]string{"id": t.ID})
}

type incomeBody struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IncomeType  string  `json:"incomeType"`
	Frequency   string  `json:"frequency"`
	Date        string  `json:"date"`
	DayOfMonth  *int    `json:"dayOfMonth"`
}

func (s *Server) postIncome(w http.ResponseWriter, r *http.Request) {
	var body incomeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	date, err := parseOptionalDate(body.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date: %w", err))
		return
	}
	in, err := s.records.AddIncome(r.Context(), service.IncomeInput{
		Description: body.Description,
		Amount:      body.Amount,
		IncomeType:  body.IncomeType,
		Frequency:   body.Frequency,
		Date:        date,
		DayOfMonth:  body.DayOfMonth,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusCreated, map[string]string{"id": in.ID})
}

type recurringBody struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DayOfMonth  int     `json:"dayOfMonth"`
	Type        string  `json:"type"`
	Frequency   string  `json:"frequency"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
}

func (s *Server) postRecurring(w http.ResponseWriter, r *http.Request) {
	var body recurringBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	start, err := parseOptionalDate(body.StartDate)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid start date: %w", err))
		return
	}
	end, err := parseOptionalDate(body.EndDate)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid end date: %w", err))
		return
	}
	rt, err := s.records.AddRecurring(r.Context(), service.RecurringInput{
		Description: body.Description,
		Amount:      body.Amount,
		DayOfMonth:  body.DayOfMonth,
		Type:        body.Type,
		Frequency:   body.Frequency,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusCreated, map[string]string{"id": rt.ID})
}

type budgetBody struct {
	Amount    float64 `json:"amount"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}

func (s *Server) postBudget(w http.ResponseWriter, r *http.Request) {
	var body budgetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	start, err := parseDate(body.StartDate)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid start date: %w", err))
		return
	}
	end, err := parseOptionalDate(body.EndDate)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid end date: %w", err))
		return
	}
	b, err := s.records.AddBudget(r.Context(), service.BudgetInput{
		Amount:    body.Amount,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusCreated, map[string]string{"id": b.ID})
}

type dailyExpenseBody struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ImportHash  string  `json:"importHash"`
}

func (s *Server) postDailyExpense(w http.ResponseWriter, r *http.Request) {
	var body dailyExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date: %w", err))
		return
	}
	e, err := s.records.AddDailyExpense(r.Context(), service.DailyExpenseInput{
		Date:        date,
		Amount:      body.Amount,
		Description: body.Description,
		ImportHash:  body.ImportHash,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusCreated, map[string]string{"id": e.ID})
}

type duplicateRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type duplicatePair struct {
	A          duplicateRecord `json:"a"`
	B          duplicateRecord `json:"b"`
	Similarity float64         `json:"similarity"`
}

func (s *Server) getDuplicateTransactions(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.records.FindDuplicateTransactions(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]duplicatePair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, duplicatePair{
			A:          duplicateRecord{ID: p.A.ID, Date: p.A.Date.Format(time.DateOnly), Description: p.A.Description, Amount: p.A.Amount},
			B:          duplicateRecord{ID: p.B.ID, Date: p.B.Date.Format(time.DateOnly), Description: p.B.Description, Amount: p.B.Amount},
			Similarity: p.Similarity,
		})
	}
	s.writeData(w, http.StatusOK, out)
}

func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, del func(string) error) {
	id := mux.Vars(r)["id"]
	if err := del(id); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeData(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id string) error { return s.records.DeleteTransaction(r.Context(), id) })
}

func (s *Server) deleteIncome(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id string) error { return s.records.DeleteIncome(r.Context(), id) })
}

func (s *Server) deleteRecurring(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id string) error { return s.records.DeleteRecurring(r.Context(), id) })
}

func (s *Server) deleteBudget(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id string) error { return s.records.DeleteBudget(r.Context(), id) })
}

func (s *Server) deleteDailyExpense(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id string) error { return s.records.DeleteDailyExpense(r.Context(), id) })
}
