package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ritikas/giftpool/internal/storage"
)

// RequireOrganizer allows the request through only when the session uid
// matches the stored organizer claim. A failed or absent claim check fails
// closed: the caller stays a non-organizer and gets 403.
func RequireOrganizer(store storage.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := GetUID(r.Context())

			claim, err := store.GetOrganizer(r.Context())
			if err != nil {
				slog.Error("Organizer check failed", "error", err, "uid", uid)
				http.Error(w, "organizer role required", http.StatusForbidden)
				return
			}
			if claim == nil || claim.OrganizerUID != uid {
				http.Error(w, "organizer role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
