package domain

import "errors"

// Domain errors.
var (
	ErrLaunchFailure   = errors.New("failed to launch process")
	ErrReapFailure     = errors.New("process still running after forced termination")
	ErrNegativeTimeout = errors.New("timeout must be non-negative")
	ErrEmptyProgram    = errors.New("program path cannot be empty")
	ErrImageNotFound   = errors.New("image file not found")
	ErrDocumentMissing = errors.New("document not found")
	ErrArtifactMissing = errors.New("rendered artifact not found")
	ErrConfigExists    = errors.New("config file already exists")
	ErrEmptyRuleSet    = errors.New("rule set contains no rules")
	ErrInvalidRule     = errors.New("invalid marker rule")
)
