package board

import (
	"net/http"

	"campusconnect/internal/common"
)

type BoardHandlers struct {
	svc BoardService
}

func NewBoardHandlers(svc BoardService) *BoardHandlers {
	return &BoardHandlers{svc: svc}
}

// ListResources handles GET /api/resources?category=
func (h *BoardHandlers) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.svc.ListResources(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, resources)
}

// CreateResource handles POST /api/resources
func (h *BoardHandlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	caller, _ := common.IdentityFrom(r.Context())

	var in CreateResourceInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}

	resource, err := h.svc.CreateResource(r.Context(), caller.UserID, in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, resource)
}

// ListEvents handles GET /api/events
func (h *BoardHandlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST /api/events
func (h *BoardHandlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	caller, _ := common.IdentityFrom(r.Context())

	var in CreateEventInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), caller.UserID, in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, event)
}
