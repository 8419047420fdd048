package http

import (
	"net/http"

	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listCategories", err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getCategory", err)
		return
	}

	category, err := h.services.CategoryService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getCategory", err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.IdentityFromContext(ctx)

	var payload models.CategoryCreate
	if err := decodePayload(r, identity, &payload); err != nil {
		writeError(w, r, "*Handler.createCategory", err)
		return
	}

	category, err := h.services.CategoryService.Create(ctx, identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createCategory", err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteCategory", err)
		return
	}

	if err = h.services.CategoryService.Delete(ctx, utils.IdentityFromContext(ctx), id); err != nil {
		writeError(w, r, "*Handler.deleteCategory", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
