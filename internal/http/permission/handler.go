package permission

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
)

type Handler struct {
	svc *permission.Service
}

func NewHandler(svc *permission.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	manage := require(permission.ManagePermissions)

	r.With(manage).Post("/users/{userID}", h.grantUser)
	r.With(manage).Delete("/users/{userID}", h.revokeUser)
	r.With(manage).Get("/users/{userID}", h.listUserGrants)
	r.With(manage).Post("/roles/{role}", h.grantRole)
	r.With(manage).Delete("/roles/{role}", h.revokeRole)
	r.With(manage).Get("/roles/{role}", h.listRoleGrants)
}

type grantRequest struct {
	Permission string `json:"permission"`
}

type grantsResponse struct {
	Permissions []string `json:"permissions"`
}

func (h *Handler) grantUser(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respond.BadRequest(w, "invalid user id")
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.GrantUser(r.Context(), companyID, userID, req.Permission); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revokeUser(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respond.BadRequest(w, "invalid user id")
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.RevokeUser(r.Context(), companyID, userID, req.Permission); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUserGrants(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respond.BadRequest(w, "invalid user id")
		return
	}

	grants, err := h.svc.ListUserGrants(r.Context(), companyID, userID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, grantsResponse{Permissions: grants})
}

func (h *Handler) grantRole(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())
	role := chi.URLParam(r, "role")

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.GrantRole(r.Context(), companyID, role, req.Permission); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revokeRole(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())
	role := chi.URLParam(r, "role")

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.RevokeRole(r.Context(), companyID, role, req.Permission); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRoleGrants(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())
	role := chi.URLParam(r, "role")

	grants, err := h.svc.ListRoleGrants(r.Context(), companyID, role)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, grantsResponse{Permissions: grants})
}
