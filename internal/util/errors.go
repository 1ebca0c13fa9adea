package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrEmptyTopic          = errors.New("topic is required")
	ErrEmptyAnswer         = errors.New("answer is required")
	ErrQuestionNotFound    = errors.New("interview question not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrLectureNotFound     = errors.New("lecture not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this position")
	ErrAlreadyUpvoted      = errors.New("already upvoted")
	ErrUnsupportedLanguage = errors.New("language not supported")
	ErrNoChatHistory       = errors.New("no chat history found")
	ErrInvalidAllocation   = errors.New("budget allocation out of range")
	ErrPortfolioNotFound   = errors.New("portfolio not found")
	ErrUpstreamUnavailable = errors.New("AI service unavailable")
	ErrQuotaExceeded       = errors.New("AI quota exceeded")
	ErrStaleGeneration     = errors.New("a newer roadmap generation already completed")
	ErrNoRoadmap           = errors.New("no roadmap generated yet")
)
