package handler

import (
	"net/http"

	"github.com/basejump/basejump-go/internal/middleware"
	"github.com/basejump/basejump-go/internal/model"
	"github.com/basejump/basejump-go/internal/service"
)

// UserHandler handles HTTP requests for user resources.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleMe handles GET /api/users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewUserResponse(user))
}
