package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ritikas/giftpool/internal/models"
	"github.com/ritikas/giftpool/internal/service"
)

type advanceRequest struct {
	// Amount is only consulted on the unpaid -> pledged edge.
	Amount float64 `json:"amount"`
}

func (a *App) ContributionsList(w http.ResponseWriter, r *http.Request) {
	contributions, err := a.Contributions.List(r.Context())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if contributions == nil {
		contributions = []models.Contribution{}
	}
	a.json(w, http.StatusOK, contributions)
}

func (a *App) ContributionAdvance(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "year must be numeric")
		return
	}

	// The body is optional: only the pledge edge needs an amount.
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	entry, err := a.Contributions.Advance(r.Context(),
		chi.URLParam(r, "recipientID"), year, chi.URLParam(r, "contributorID"), req.Amount)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, entry)
}

func (a *App) Upcoming(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Contributions.Upcoming(r.Context())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if entries == nil {
		entries = []service.UpcomingEntry{}
	}
	a.json(w, http.StatusOK, entries)
}
