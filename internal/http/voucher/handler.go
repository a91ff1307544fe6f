package voucher

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
	"github.com/openbooks-dev/openbooks/internal/voucher"
)

type Handler struct {
	svc *voucher.Service
}

func NewHandler(svc *voucher.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	r.With(require(permission.CreateVoucher)).Post("/", h.commit)
	r.With(require(permission.CreateVoucher)).Post("/{id}/reverse", h.reverse)
	r.With(require(permission.ViewVouchers)).Get("/", h.list)
	r.With(require(permission.ViewVouchers)).Get("/{id}", h.get)
}

type entryRequest struct {
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type stockRequest struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Location string          `json:"location"`
}

type commitVoucherRequest struct {
	Type      voucher.Type   `json:"type"`
	Date      time.Time      `json:"date"`
	Narration string         `json:"narration"`
	Entries   []entryRequest `json:"entries"`
	Stock     []stockRequest `json:"stock,omitempty"`
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())
	identity, _ := middleware.IdentityFrom(r.Context())

	var req commitVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	entries := make([]voucher.EntryParams, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = voucher.EntryParams{
			AccountID: e.AccountID,
			Amount:    e.Amount,
		}
	}

	stock := make([]voucher.StockParams, len(req.Stock))
	for i, s := range req.Stock {
		stock[i] = voucher.StockParams{
			ItemID:   s.ItemID,
			Quantity: s.Quantity,
			Rate:     s.Rate,
			Location: s.Location,
		}
	}

	v, err := h.svc.Commit(r.Context(), voucher.CommitParams{
		CompanyID: companyID,
		ActorID:   identity.UserID,
		Date:      req.Date,
		Type:      req.Type,
		Narration: req.Narration,
		Entries:   entries,
		Stock:     stock,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(v))
}

type reverseVoucherRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	Narration string     `json:"narration,omitempty"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())
	identity, _ := middleware.IdentityFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req reverseVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	params := voucher.ReverseParams{
		CompanyID: companyID,
		ActorID:   identity.UserID,
		VoucherID: id,
		Narration: req.Narration,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	v, err := h.svc.Reverse(r.Context(), params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(v))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	filter := voucher.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := voucher.Type(s)
		filter.Type = &t
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid start_date")
			return
		}
		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid end_date")
			return
		}
		filter.EndDate = &t
	}

	vouchers, err := h.svc.List(r.Context(), companyID, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(vouchers))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	v, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(v))
}
