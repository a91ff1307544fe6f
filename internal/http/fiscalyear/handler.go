package fiscalyear

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/fiscalyear"
	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
)

type Handler struct {
	svc *fiscalyear.Service
}

func NewHandler(svc *fiscalyear.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	manage := require(permission.ManageFinancialYears)

	r.With(manage).Post("/", h.create)
	r.With(manage).Get("/", h.list)
	r.With(manage).Get("/{id}", h.get)
	r.With(manage).Post("/{id}/close", h.close)
	r.With(manage).Post("/{id}/reopen", h.reopen)
}

type createYearRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type yearResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Closed    bool      `json:"closed"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(fy *fiscalyear.FinancialYear) yearResponse {
	return yearResponse{
		ID:        fy.ID,
		StartDate: fy.StartDate,
		EndDate:   fy.EndDate,
		Closed:    fy.Closed,
		CreatedAt: fy.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	var req createYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	fy, err := h.svc.Create(r.Context(), fiscalyear.CreateParams{
		CompanyID: companyID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(fy))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	years, err := h.svc.List(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]yearResponse, len(years))
	for i, fy := range years {
		resp[i] = toResponse(fy)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	fy, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(fy))
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Close(r.Context(), companyID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reopen(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Reopen(r.Context(), companyID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
