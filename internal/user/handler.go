package user

import (
	"net/http"

	"campusconnect/internal/common"

	"github.com/gorilla/mux"
)

// Handler wires HTTP -> service
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

// GetProfile handles GET /api/profiles/{userId}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.GetProfile(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profiles/{userId}; self only.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, _ := common.IdentityFrom(r.Context())
	userID := mux.Vars(r)["userId"]
	if err := h.userService.AuthorizeEdit(caller.UserID, userID); err != nil {
		common.WriteError(w, err)
		return
	}

	var fields ProfileFields
	if err := common.DecodeJSON(r, &fields); err != nil {
		common.WriteError(w, err)
		return
	}

	profile, err := h.userService.UpsertProfile(r.Context(), caller.UserID, userID, fields)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}
