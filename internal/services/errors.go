package services

import "errors"

// Error kinds returned by the service layer. Handlers map these to HTTP
// statuses; everything here is correctable by the caller.
var (
	ErrNotFound             = errors.New("not found")
	ErrProfileRequired      = errors.New("profile required to perform this action")
	ErrCampaignNotOpen      = errors.New("campaign is not open for applications")
	ErrDuplicateApplication = errors.New("an application for this campaign already exists")
	ErrInvalidTransition    = errors.New("application has already been decided")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrProposalTooShort     = errors.New("proposal text is too short")
	ErrInvalidDecision      = errors.New("decision must be accept or reject")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrSelfMessage          = errors.New("cannot message yourself")
)
