package server

import (
	"encoding/json"
	"net/http"

	"github.com/ritikas/giftpool/internal/models"
)

func (a *App) PaymentInfoGet(w http.ResponseWriter, r *http.Request) {
	info, err := a.Payments.Get(r.Context())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if info == nil {
		// Not set yet; absence is a valid state, not an error.
		a.json(w, http.StatusOK, nil)
		return
	}
	a.json(w, http.StatusOK, info)
}

func (a *App) PaymentInfoSet(w http.ResponseWriter, r *http.Request) {
	var info models.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	if err := a.Payments.Set(r.Context(), info); err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, info)
}
