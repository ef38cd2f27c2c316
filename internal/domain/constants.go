package domain

import "time"

// ==== Session Constants ====

// SessionTTL is the default session token time-to-live
const SessionTTL = 24 * time.Hour

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "modex_session"

// SignInTimeout bounds a single identity provider call
const SignInTimeout = 10 * time.Second

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitAuth is the default rate limit for sign-in/sign-out (requests/sec)
	DefaultRateLimitAuth = 2

	// DefaultRateLimitWS is the default rate limit for session socket upgrades (req/sec)
	DefaultRateLimitWS = 5
)

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum inbound frame size on the session socket
const MaxMessageSize = 512

// ==== Compose Constants ====

// MaxDraftLength caps the compose buffer in runes
const MaxDraftLength = 2000
