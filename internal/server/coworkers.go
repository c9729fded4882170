package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ritikas/giftpool/internal/models"
)

type coworkerRequest struct {
	Name     string       `json:"name"`
	Birthday *models.Date `json:"birthday"`
}

func (a *App) CoworkersList(w http.ResponseWriter, r *http.Request) {
	coworkers, err := a.Coworkers.List(r.Context())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if coworkers == nil {
		coworkers = []models.Coworker{}
	}
	a.json(w, http.StatusOK, coworkers)
}

func (a *App) CoworkerCreate(w http.ResponseWriter, r *http.Request) {
	var req coworkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	coworker, err := a.Coworkers.Create(r.Context(), req.Name, req.Birthday)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, coworker)
}

func (a *App) CoworkerRegister(w http.ResponseWriter, r *http.Request) {
	var req coworkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	// Self-registration never carries a birthday, whatever the payload says.
	coworker, err := a.Coworkers.Register(r.Context(), req.Name)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, coworker)
}

func (a *App) CoworkerUpdate(w http.ResponseWriter, r *http.Request) {
	var req coworkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	coworker, err := a.Coworkers.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Birthday)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, coworker)
}

func (a *App) CoworkerDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Coworkers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "deleted"})
}
