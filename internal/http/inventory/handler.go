package inventory

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/inventory"
	"github.com/openbooks-dev/openbooks/internal/permission"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, require middleware.Guard) {
	manage := require(permission.ManageItems)
	view := require(permission.ViewStock)

	r.With(manage).Post("/items", h.createItem)
	r.With(view).Get("/items", h.listItems)
	r.With(view).Get("/items/{id}", h.getItem)
	r.With(view).Get("/items/{id}/position", h.stockPosition)
	r.With(view).Get("/positions", h.positions)
	r.With(view).Get("/positions/by-location", h.positionsByLocation)
	r.With(view).Get("/available", h.availableForSale)
}

type createItemRequest struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
}

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toItemResponse(item *inventory.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Unit:        item.Unit,
		Description: item.Description,
		Barcode:     item.Barcode,
		CreatedAt:   item.CreatedAt,
	}
}

type positionResponse struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

func toPositionResponse(p inventory.Position) positionResponse {
	return positionResponse{
		ItemID:   p.ItemID,
		ItemName: p.ItemName,
		Unit:     p.Unit,
		Quantity: p.Quantity,
		Value:    p.Value,
	}
}

func toPositionResponseList(positions []inventory.Position) []positionResponse {
	resp := make([]positionResponse, len(positions))
	for i, p := range positions {
		resp[i] = toPositionResponse(p)
	}

	return resp
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	item, err := h.svc.CreateItem(r.Context(), companyID, req.Name, req.Unit, req.Description, req.Barcode)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toItemResponse(item))
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	items, err := h.svc.ListItems(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]itemResponse, len(items))
	for i := range items {
		resp[i] = toItemResponse(&items[i])
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	item, err := h.svc.GetItem(r.Context(), companyID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toItemResponse(item))
}

func (h *Handler) stockPosition(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	pos, err := h.svc.StockPosition(r.Context(), companyID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPositionResponse(*pos))
}

func (h *Handler) positions(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	positions, err := h.svc.Positions(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPositionResponseList(positions))
}

type locationPositionResponse struct {
	positionResponse
	Location string `json:"location"`
}

func (h *Handler) positionsByLocation(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	positions, err := h.svc.PositionsByLocation(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]locationPositionResponse, len(positions))
	for i, p := range positions {
		resp[i] = locationPositionResponse{
			positionResponse: toPositionResponse(p.Position),
			Location:         p.Location,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) availableForSale(w http.ResponseWriter, r *http.Request) {
	companyID, _ := middleware.CompanyFrom(r.Context())

	positions, err := h.svc.AvailableForSale(r.Context(), companyID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPositionResponseList(positions))
}
