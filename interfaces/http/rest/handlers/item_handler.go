package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"freshtrack-backend/application/services"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/pkg/auth"
	"freshtrack-backend/pkg/common"
)

// ItemHandler handles the per-user item CRUD and analytics requests
type ItemHandler struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(inventory *services.InventoryService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		inventory: inventory,
		logger:    logger,
	}
}

// itemRequest is the request body for adding or replacing an item. Quantity
// is untyped because clients send either a JSON number or a numeric string.
type itemRequest struct {
	ItemName     string      `json:"itemName"`
	Quantity     interface{} `json:"quantity"`
	PurchaseDate string      `json:"purchaseDate"`
	ExpiryDate   string      `json:"expiryDate"`
}

func (r itemRequest) toInput() inventory.ItemInput {
	return inventory.ItemInput{
		Name:         r.ItemName,
		Quantity:     r.Quantity,
		PurchaseDate: r.PurchaseDate,
		ExpiryDate:   r.ExpiryDate,
	}
}

// AddItem handles POST /items
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
		return
	}

	var req itemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.inventory.AddItem(r.Context(), userCtx.Email, req.toInput())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item added successfully",
		"item":    item,
	})
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
		return
	}

	items, err := h.inventory.ListItems(r.Context(), userCtx.Email)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if items == nil {
		items = []inventory.Item{}
	}

	common.RespondJSON(w, http.StatusOK, items)
}

// UpdateItem handles PUT /items/{itemID}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
		return
	}

	itemID := chi.URLParam(r, "itemID")

	var req itemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.inventory.UpdateItem(r.Context(), userCtx.Email, itemID, req.toInput()); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "Item updated successfully")
}

// DeleteItem handles DELETE /items/{itemID}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
		return
	}

	itemID := chi.URLParam(r, "itemID")

	if err := h.inventory.DeleteItem(r.Context(), userCtx.Email, itemID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "Item deleted successfully")
}

// Analytics handles GET /analytics
func (h *ItemHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
		return
	}

	report, err := h.inventory.Analytics(r.Context(), userCtx.Email)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, report)
}
