// Package session binds one show queue to the store it is loaded from and
// saved to, and exposes the operations a menu or command calls.
//
// A Session owns its queue; there is no package-level state. Validation and
// not-found failures are returned to the caller with the queue untouched.
// Loading never fails because of a missing, unreadable, or partly malformed
// source. Lock takes an advisory lock file next to the store so two
// processes do not edit the same queue at once.
package session
