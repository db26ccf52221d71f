package handler

import (
	"harvesthub/common"
	"harvesthub/model"
	"harvesthub/service"
	"net/http"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Log in as a farmer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Email and password"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(w, r, &req); appErr != nil {
		return appErr
	}

	resp, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return toAppError(err, "Could not log in")
	}

	common.WriteJSON(w, http.StatusOK, resp)
	return nil
}
