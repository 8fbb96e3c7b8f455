package booking

import "slotbook/internal/pkg/errs"

var ErrInvalidActorRole = errs.New("invalid actor role")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// ActorRole says on whose behalf a request is made. It only changes who gets notified.
type ActorRole string

const (
	ActorOwner  ActorRole = "owner"
	ActorClient ActorRole = "client"
)

func (r ActorRole) String() string {
	return string(r)
}

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorOwner, ActorClient:
		return true
	default:
		return false
	}
}

// Counterpart is the party to notify when r acts.
func (r ActorRole) Counterpart() ActorRole {
	if r == ActorOwner {
		return ActorClient
	}
	return ActorOwner
}

func ParseActorRole(s string) (ActorRole, error) {
	role := ActorRole(s)
	if !role.IsValid() {
		return "", ErrInvalidActorRole
	}
	return role, nil
}
