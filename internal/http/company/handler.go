package company

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/account"
	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
	"github.com/openbooks-dev/openbooks/internal/tenant"
)

type Handler struct {
	tenants  *tenant.Service
	accounts *account.Service
}

func NewHandler(tenants *tenant.Service, accounts *account.Service) *Handler {
	return &Handler{tenants: tenants, accounts: accounts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.signup)
	r.Get("/{id}", h.get)
	r.Get("/", h.listMine)
	r.Post("/{id}/default", h.setDefault)
	r.Patch("/{id}/subscription", h.updateSubscription)
}

type signupRequest struct {
	Name     string          `json:"name"`
	PlanTier tenant.PlanTier `json:"plan_tier"`
}

type companyResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name"`
	PlanTier           tenant.PlanTier           `json:"plan_tier"`
	SubscriptionStatus tenant.SubscriptionStatus `json:"subscription_status"`
	CreatedAt          time.Time                 `json:"created_at"`
}

func toResponse(c *tenant.Company) companyResponse {
	return companyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		PlanTier:           c.PlanTier,
		SubscriptionStatus: c.SubscriptionStatus,
		CreatedAt:          c.CreatedAt,
	}
}

// signup creates a company, affiliates the caller as its default admin and
// seeds the standard chart of accounts.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, permission.ErrUnauthenticated)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if req.Name == "" {
		respond.BadRequest(w, "company name is required")
		return
	}

	if req.PlanTier == "" {
		req.PlanTier = tenant.PlanFree
	}

	c, err := h.tenants.CreateCompany(r.Context(), tenant.CreateCompanyParams{
		Name:     req.Name,
		PlanTier: req.PlanTier,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	err = h.tenants.AddAffiliation(r.Context(), tenant.Affiliation{
		UserID:    id.UserID,
		CompanyID: c.ID,
		Role:      permission.RoleAdmin,
		IsDefault: true,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	if _, err := h.accounts.SeedChart(r.Context(), c.ID); err != nil {
		slog.Error("failed to seed chart of accounts", "error", err, "company_id", c.ID)
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	c, err := h.tenants.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

// setDefault marks the company as the caller's default affiliation.
func (h *Handler) setDefault(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, permission.ErrUnauthenticated)
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.tenants.SetDefault(r.Context(), identity.UserID, companyID); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateSubscriptionRequest struct {
	Status tenant.SubscriptionStatus `json:"status"`
}

func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		respond.Error(w, permission.ErrUnauthenticated)
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req updateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.tenants.UpdateSubscription(r.Context(), companyID, req.Status); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type affiliationResponse struct {
	CompanyID uuid.UUID `json:"company_id"`
	Role      string    `json:"role"`
	IsDefault bool      `json:"is_default"`
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, permission.ErrUnauthenticated)
		return
	}

	affiliations, err := h.tenants.Affiliations(r.Context(), id.UserID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]affiliationResponse, len(affiliations))
	for i, a := range affiliations {
		resp[i] = affiliationResponse{
			CompanyID: a.CompanyID,
			Role:      a.Role,
			IsDefault: a.IsDefault,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}
