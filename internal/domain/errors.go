package domain

import "errors"

var (
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
	ErrInvalidRiskAnswer      = errors.New("risk answer must be 1, 2 or 3")
	ErrAssessmentFull         = errors.New("risk assessment already has six answers")
	ErrAssessmentIncomplete   = errors.New("risk assessment needs six answers")
	ErrNotLoggedIn            = errors.New("no active profile; log in first")
	ErrAlreadyOnboarded       = errors.New("onboarding already completed for this session")
	ErrSessionNotFound        = errors.New("session not found")
)
