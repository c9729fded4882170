package service

import (
	"context"
	"log/slog"

	"github.com/ritikas/giftpool/internal/auth"
	"github.com/ritikas/giftpool/internal/storage"
)

// Session is the result of starting or resuming a session.
type Session struct {
	UID       string `json:"uid"`
	Token     string `json:"token"`
	Organizer bool   `json:"organizer"`
}

// SessionService bootstraps anonymous sessions and resolves the organizer
// claim for each of them.
type SessionService struct {
	sessions *auth.SessionManager
	store    storage.Store
}

// NewSessionService creates a new session service.
func NewSessionService(sessions *auth.SessionManager, store storage.Store) *SessionService {
	return &SessionService{sessions: sessions, store: store}
}

// Start issues an identity and attempts the organizer claim with it. When the
// caller presents a valid pre-issued token its uid is kept and only re-signed;
// otherwise a fresh identity is minted.
//
// A failed claim check is logged and leaves the session a non-organizer: the
// privilege fails closed, the session itself still works.
func (s *SessionService) Start(ctx context.Context, existingToken string) (Session, error) {
	var uid, token string
	var err error

	if existingToken != "" {
		if claims, validateErr := s.sessions.Validate(existingToken); validateErr == nil {
			uid = claims.UID
			token, err = s.sessions.Generate(uid)
		} else {
			slog.Warn("Presented session token invalid; issuing fresh identity", "error", validateErr)
		}
	}
	if uid == "" {
		uid, token, err = s.sessions.Issue()
	}
	if err != nil {
		slog.Error("Failed to issue session", "error", err)
		return Session{}, err
	}

	organizer := false
	winner, err := s.store.ClaimOrganizer(ctx, uid)
	if err != nil {
		slog.Error("Organizer claim failed; session continues as non-organizer", "uid", uid, "error", err)
	} else {
		organizer = winner == uid
	}

	slog.Info("Session started", "uid", uid, "organizer", organizer)
	return Session{UID: uid, Token: token, Organizer: organizer}, nil
}
