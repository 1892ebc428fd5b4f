package domain

import "errors"

// Validation errors.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingTopic       = errors.New("topic is required")
	ErrMissingText        = errors.New("phrase text is required")
)

// Account errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Phrase errors. ErrPhraseNotFound covers both a missing phrase and a phrase
// owned by someone else.
var (
	ErrPhraseNotFound   = errors.New("phrase not found or not permitted")
	ErrGenerationFailed = errors.New("phrase generation failed")
	ErrGenerationEmpty  = errors.New("generator returned no text")
	ErrDuplicateRequest = errors.New("duplicate request")
)

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid or expired token")
)
