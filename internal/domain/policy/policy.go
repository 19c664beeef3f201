// Package policy holds the authorization decisions for account operations.
// All functions are pure so they can be consulted synchronously from any layer.
package policy

import "github.com/google/uuid"

// CanListAll reports whether a caller may list every stored account.
// Only admins may.
func CanListAll(callerIsAdmin bool) bool {
	return callerIsAdmin
}

// CanModify reports whether a caller may mutate (update or delete) the target
// account: callers may always modify themselves, admins may modify anyone.
//
// The decision is based solely on the caller's identity and admin flag; it
// never considers whether the target exists, so a denied caller cannot use
// the outcome to probe for valid account IDs.
func CanModify(callerID, targetID uuid.UUID, callerIsAdmin bool) bool {
	return callerID == targetID || callerIsAdmin
}
