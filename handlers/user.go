package handlers

import (
	"net/http"

	"tracker/store"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetUsers()
	if err != nil {
		http.Error(w, "Failed to load users", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
