package core

import "errors"

// Reject reasons for dropped commands. Nothing here ever reaches the
// wire: invalid and conflicting requests are dropped silently and only
// logged server-side.
var (
	ErrBadName       = errors.New("name must be 3-20 characters")
	ErrAlreadyJoined = errors.New("connection already joined a room")
	ErrNotRegistered = errors.New("connection has not joined a room")
	ErrNameTaken     = errors.New("username already present in room")
	ErrEmptyMessage  = errors.New("empty message")
	ErrCooldown      = errors.New("message cooldown not elapsed")
	ErrNeedTwo       = errors.New("room does not have exactly two members")
	ErrGameActive    = errors.New("game already active")
	ErrMoveRejected  = errors.New("move rejected")
)
