package ledger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/ledger"
	"github.com/openbooks-dev/openbooks/internal/permission"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	view := require(permission.ViewLedger)

	r.With(view).Get("/accounts/{id}/ledger", h.accountLedger)
	r.With(view).Get("/trial-balance", h.trialBalance)
}

type lineResponse struct {
	Date           time.Time       `json:"date"`
	VoucherNumber  int64           `json:"voucher_number"`
	Narration      string          `json:"narration"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

func (h *Handler) accountLedger(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	lines, err := h.svc.Ledger(r.Context(), companyID, accountID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = lineResponse{
			Date:           l.Date,
			VoucherNumber:  l.VoucherNumber,
			Narration:      l.Narration,
			Debit:          l.Debit,
			Credit:         l.Credit,
			RunningBalance: l.RunningBalance,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type trialBalanceAccountResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

type trialBalanceResponse struct {
	Accounts    []trialBalanceAccountResponse `json:"accounts"`
	TotalDebit  decimal.Decimal               `json:"total_debit"`
	TotalCredit decimal.Decimal               `json:"total_credit"`
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	tb, err := h.svc.TrialBalance(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	accounts := make([]trialBalanceAccountResponse, len(tb.Accounts))
	for i, a := range tb.Accounts {
		accounts[i] = trialBalanceAccountResponse{
			AccountID: a.AccountID,
			Code:      a.Code,
			Name:      a.Name,
			Debit:     a.Debit,
			Credit:    a.Credit,
		}
	}

	respond.JSON(w, http.StatusOK, trialBalanceResponse{
		Accounts:    accounts,
		TotalDebit:  tb.TotalDebit,
		TotalCredit: tb.TotalCredit,
	})
}
