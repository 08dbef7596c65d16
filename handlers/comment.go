package handlers

import (
	"log"
	"net/http"
	"strings"

	"tracker/middleware"
	"tracker/store"

	"github.com/go-chi/chi/v5"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(s *store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

// Create persists a comment posted on an issue. Clients render the comment
// optimistically under a temporary id; the stored comment comes back with
// its real one.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	issueID := chi.URLParam(r, "issueID")
	message := r.FormValue("message")
	if message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	comment, err := h.store.CreateComment(issueID, user.ID, message)
	if err != nil {
		http.Error(w, "Failed to create comment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"comment": comment,
	})
}

// Delete removes a comment by id and sends the client back to the board.
// Store errors are not translated here; a missing row is logged only.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	commentID := r.FormValue("commentId")
	if commentID == "" {
		http.Error(w, "Comment id is required", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteComment(commentID); err != nil {
		log.Printf("Failed to delete comment %s: %v", commentID, err)
	}

	// Only follow same-origin paths; anything else goes back to the list
	back := r.Header.Get("Referer")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/projects"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
