package feed

import (
	"net/http"
	"strconv"

	"campusconnect/internal/common"

	"github.com/gorilla/mux"
)

type FeedHandlers struct {
	FeedSvc FeedUsecase
}

func NewFeedHandlers(svc FeedUsecase) *FeedHandlers {
	return &FeedHandlers{FeedSvc: svc}
}

// ListPosts handles GET /api/posts?type=&limit=
func (h *FeedHandlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			common.WriteError(w, common.NewValidationError("limit", "Expected a positive integer"))
			return
		}
		limit = n
	}

	posts, err := h.FeedSvc.ListPosts(r.Context(), limit, r.URL.Query().Get("type"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

// CreatePost handles POST /api/posts
func (h *FeedHandlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	caller, _ := common.IdentityFrom(r.Context())

	var in CreatePostInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}

	post, err := h.FeedSvc.CreatePost(r.Context(), caller.UserID, in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, post)
}

// GetPost handles GET /api/posts/{id}
func (h *FeedHandlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.FeedSvc.GetPost(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{id}
func (h *FeedHandlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r, "id")
	if !ok {
		return
	}
	caller, _ := common.IdentityFrom(r.Context())

	if err := h.FeedSvc.DeletePost(r.Context(), caller.UserID, id); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /api/posts/{postId}/comments
func (h *FeedHandlers) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r, "postId")
	if !ok {
		return
	}
	caller, _ := common.IdentityFrom(r.Context())

	var req CommentInput
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	comment, err := h.FeedSvc.AddComment(r.Context(), id, caller.UserID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment)
}

// ToggleLike handles POST /api/posts/{postId}/like
func (h *FeedHandlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r, "postId")
	if !ok {
		return
	}
	caller, _ := common.IdentityFrom(r.Context())

	result, err := h.FeedSvc.ToggleLike(r.Context(), id, caller.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// postID parses a numeric path id; anything else cannot name a post.
func postID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil || id < 1 {
		common.WriteError(w, common.NewNotFound("post"))
		return 0, false
	}
	return id, true
}
