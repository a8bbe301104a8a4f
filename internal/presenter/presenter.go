// Package presenter maps request state snapshots to rendering intents.
// Nothing here has side effects.
package presenter

import (
	"github.com/DanielPopoola/request-flows/internal/domain"
)

// Intent is exactly one of ShowNothing, ShowLoadingIndicator, ShowError or
// ShowContent.
type Intent interface {
	intent()
}

type ShowNothing struct{}

type ShowLoadingIndicator struct{}

type ShowError struct {
	Message string
}

type ShowContent struct {
	Body string
}

func (ShowNothing) intent()          {}
func (ShowLoadingIndicator) intent() {}
func (ShowError) intent()            {}
func (ShowContent) intent()          {}

// IdlePolicy decides what an idle flow shows.
type IdlePolicy int

const (
	// IdleAsLoading suits flows that start loading on mount.
	IdleAsLoading IdlePolicy = iota
	// IdleAsNothing suits flows waiting for a user action.
	IdleAsNothing
)

// ContentRenderer turns a successful payload into displayable content.
type ContentRenderer[T any] func(payload T) (string, error)

// Present maps a snapshot to an intent.
func Present[T any](state domain.RequestState[T], idle IdlePolicy, render ContentRenderer[T]) Intent {
	switch s := state.(type) {
	case domain.Idle[T]:
		if idle == IdleAsNothing {
			return ShowNothing{}
		}
		return ShowLoadingIndicator{}
	case domain.Loading[T]:
		return ShowLoadingIndicator{}
	case domain.Failed[T]:
		return ShowError{Message: s.Message}
	case domain.Success[T]:
		body, err := render(s.Payload)
		if err != nil {
			return ShowError{Message: err.Error()}
		}
		return ShowContent{Body: body}
	default:
		return ShowError{Message: "unknown request state"}
	}
}
