package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/account"
	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	manage := require(permission.ManageAccounts)

	r.With(manage).Post("/", h.create)
	r.With(manage).Post("/seed", h.seed)
	r.With(manage).Get("/", h.list)
	r.With(manage).Get("/{id}", h.get)
	r.With(manage).Patch("/{id}/name", h.rename)
	r.With(manage).Patch("/{id}/classification", h.reclassify)
	r.With(manage).Delete("/{id}", h.softDelete)
}

type createAccountRequest struct {
	Code          string                   `json:"code"`
	Name          string                   `json:"name"`
	Type          account.Type             `json:"type"`
	Kind          account.CounterpartyKind `json:"kind"`
	BankName      string                   `json:"bank_name,omitempty"`
	AccountNumber string                   `json:"account_number,omitempty"`
}

type accountResponse struct {
	ID        uuid.UUID                `json:"id"`
	Code      string                   `json:"code"`
	Name      string                   `json:"name"`
	Type      account.Type             `json:"type"`
	Kind      account.CounterpartyKind `json:"kind"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt *time.Time               `json:"updated_at,omitempty"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      a.Type,
		Kind:      a.Kind,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		CompanyID:     companyID,
		Code:          req.Code,
		Name:          req.Name,
		Type:          req.Type,
		Kind:          req.Kind,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

type seedResponse struct {
	Created int `json:"created"`
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	created, err := h.svc.SeedChart(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, seedResponse{Created: created})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	var (
		accounts []*account.Account
		err      error
	)

	if kind := r.URL.Query().Get("kind"); kind != "" {
		accounts, err = h.svc.ListByKind(r.Context(), companyID, account.CounterpartyKind(kind))
	} else {
		accounts, err = h.svc.List(r.Context(), companyID)
	}
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(accounts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	a, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

type renameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	a, err := h.svc.Rename(r.Context(), companyID, id, req.Name)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

type reclassifyRequest struct {
	Type account.Type             `json:"type"`
	Kind account.CounterpartyKind `json:"kind"`
}

func (h *Handler) reclassify(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req reclassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	a, err := h.svc.Reclassify(r.Context(), companyID, id, req.Type, req.Kind)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) softDelete(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.SoftDelete(r.Context(), companyID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
