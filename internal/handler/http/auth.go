package http

import (
	"net/http"

	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) regenerateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := h.services.AuthService.RegenerateToken(ctx, utils.IdentityFromContext(ctx))
	if err != nil {
		writeError(w, r, "*Handler.regenerateToken", err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AuthService.DeleteAccount(ctx, utils.IdentityFromContext(ctx)); err != nil {
		writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
