package charterrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrAuctionExists       = errors.New("auction already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("participant already exists")
)

// input validation errors
var (
	ErrInvalidAuction     = errors.New("invalid auction")
	ErrInvalidParticipant = errors.New("invalid participant")
	ErrInvalidBid         = errors.New("invalid bid record")
	ErrInvalidMode        = errors.New("invalid chart mode")
)
