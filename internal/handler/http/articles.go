package http

import (
	"net/http"

	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/models"
)

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ArticleService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listArticles", err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	utils.WriteJSON(w, articles, http.StatusOK)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getArticle", err)
		return
	}

	article, err := h.services.ArticleService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getArticle", err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.IdentityFromContext(ctx)

	var payload models.ArticleCreate
	if err := decodePayload(r, identity, &payload); err != nil {
		writeError(w, r, "*Handler.createArticle", err)
		return
	}

	article, err := h.services.ArticleService.Create(ctx, identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createArticle", err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

// updateArticle serves both PUT and PATCH; either way only the fields
// present in the body change.
func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.IdentityFromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateArticle", err)
		return
	}

	var payload models.ArticleUpdate
	if err = decodePayload(r, identity, &payload); err != nil {
		writeError(w, r, "*Handler.updateArticle", err)
		return
	}
	payload.ID = id

	article, err := h.services.ArticleService.Update(ctx, identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.updateArticle", err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteArticle", err)
		return
	}

	if err = h.services.ArticleService.Delete(ctx, utils.IdentityFromContext(ctx), id); err != nil {
		writeError(w, r, "*Handler.deleteArticle", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
