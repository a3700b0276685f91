package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrRoleNotFound        = errors.New("job role not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillProfileEmpty   = errors.New("candidate skill profile empty")
	ErrSkillAlreadyTracked = errors.New("skill already tracked")
	ErrBelowMatchThreshold = errors.New("match below notification threshold")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationClosed   = errors.New("application already closed")
	ErrEmptyAssessment     = errors.New("assessment has no questions")
	ErrInvalidRoleWeights  = errors.New("requirement weights must sum to 100")
	ErrScoreOutOfRange     = errors.New("score must be within 0-100")
	ErrNoRelevantSkills    = errors.New("event matches none of the candidate's skills")
)
