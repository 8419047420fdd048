package http

import (
	"net/http"

	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listComments", err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getComment", err)
		return
	}

	comment, err := h.services.CommentService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getComment", err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.IdentityFromContext(ctx)

	var payload models.CommentCreate
	if err := decodePayload(r, identity, &payload); err != nil {
		writeError(w, r, "*Handler.createComment", err)
		return
	}

	comment, err := h.services.CommentService.Create(ctx, identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createComment", err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.IdentityFromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	var payload models.CommentUpdate
	if err = decodePayload(r, identity, &payload); err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}
	payload.ID = id

	comment, err := h.services.CommentService.Update(ctx, identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.updateComment", err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	if err = h.services.CommentService.Delete(ctx, utils.IdentityFromContext(ctx), id); err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
