package domain

import (
	"time"

	"github.com/google/uuid"
)

// Capability names one delegated action. Capabilities are independent:
// granting one says nothing about the others.
type Capability int

const (
	CapPost Capability = iota
	CapMessage
	CapDeletePosts
)

func (c Capability) String() string {
	switch c {
	case CapPost:
		return "post"
	case CapMessage:
		return "message"
	case CapDeletePosts:
		return "deletePosts"
	}
	return "unknown"
}

// Delegation lets DelegateID act on behalf of OwnerID.
// At most one row exists per ordered (owner, delegate) pair and grants are
// never transitive.
type Delegation struct {
	OwnerID        uuid.UUID `json:"ownerId"`
	DelegateID     uuid.UUID `json:"delegateId"`
	CanPost        bool      `json:"canPost"`
	CanMessage     bool      `json:"canMessage"`
	CanDeletePosts bool      `json:"canDeletePosts"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Grants reports whether this delegation covers the given capability.
func (d Delegation) Grants(c Capability) bool {
	switch c {
	case CapPost:
		return d.CanPost
	case CapMessage:
		return d.CanMessage
	case CapDeletePosts:
		return d.CanDeletePosts
	}
	return false
}
