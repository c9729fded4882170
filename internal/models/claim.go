package models

// OrganizerClaim records which session identity holds the organizer role.
// It is written exactly once: the first session to observe it absent claims
// it, and there is no reassignment path.
type OrganizerClaim struct {
	OrganizerUID string `json:"organizerUid"`
}
