package errors

import "fmt"

var (
	// Authentication: the caller could not be identified at all.
	ErrNoSession = fmt.Errorf("no session cookie provided")
	// Authentication: a well-formed token that matches no live session.
	// Kept distinct from ErrNoSession so clients can clear stale cookies.
	ErrInvalidSession = fmt.Errorf("invalid or expired session")

	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrUsernameTaken      = fmt.Errorf("username already in use")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")

	// Authorization: no delegation row exists for (owner, delegate).
	ErrNotDelegated = fmt.Errorf("no delegation from this user")
	// Authorization: a delegation exists but the requested capability is not granted.
	ErrCapabilityDenied = fmt.Errorf("delegation does not grant this capability")
	// Authorization: the identity being acted as is not a conversation member.
	ErrNotMember = fmt.Errorf("not a member of this conversation")

	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrPostNotFound         = fmt.Errorf("post not found")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrDelegationNotFound   = fmt.Errorf("delegation not found")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
