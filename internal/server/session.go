package server

import (
	"net/http"
	"strings"
)

// SessionStart issues (or resumes) an anonymous session identity and resolves
// the organizer claim for it. A valid pre-issued token in the Authorization
// header keeps its uid.
func (a *App) SessionStart(w http.ResponseWriter, r *http.Request) {
	existing := ""
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			existing = parts[1]
		}
	}

	session, err := a.Sessions.Start(r.Context(), existing)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to start session")
		return
	}
	a.json(w, http.StatusOK, session)
}
