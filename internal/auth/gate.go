// Package auth decides whether a visitor may see the protected shell and
// manages the sessions that feed that decision.
package auth

import "github.com/mmuslimabdulj/modex/internal/domain"

// Outcome is what the gate allows the caller to render
type Outcome int

const (
	// OutcomeLoading means the identity provider has not answered yet
	OutcomeLoading Outcome = iota
	// OutcomeRedirectToLogin means nobody is signed in
	OutcomeRedirectToLogin
	// OutcomeRenderChildren means the protected content may be shown
	OutcomeRenderChildren
)

// String returns the wire name used on the session socket
func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRedirectToLogin:
		return "login"
	case OutcomeRenderChildren:
		return "ready"
	}
	return "unknown"
}

// Decide maps a session snapshot onto one of the three outcomes.
// Resolving wins regardless of identity.
func Decide(s domain.Session) Outcome {
	if s.Resolving {
		return OutcomeLoading
	}
	if s.Identity == nil {
		return OutcomeRedirectToLogin
	}
	return OutcomeRenderChildren
}
