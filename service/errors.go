package service

import (
	"errors"
	"strings"

	"investsim/repository"
)

var (
	ErrNonFiniteResult    = errors.New("simulation produced a non-finite value")
	ErrNonPositivePeriod  = errors.New("period must be greater than zero")
	ErrInvalidHistoryDays = errors.New("history days out of range")
)

// ValidationError carries every rule violation found in a simulation input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid simulation input: " + strings.Join(e.Messages, "; ")
}

var (
	ErrArticleNotFound     = repository.ErrArticleNotFound
	ErrArticlesUnavailable = errors.New("article index unavailable")
	ErrInvalidArticleLimit = errors.New("article limit must be positive")
	ErrInvalidChartPeriod  = errors.New("unknown chart period")
)
