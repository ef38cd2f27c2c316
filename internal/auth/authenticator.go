package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// Observer receives the result of every provider call
type Observer interface {
	AuthResult(op string, err error)
}

// Authenticator runs provider calls off the request path and records the
// results in the session store. Failures are logged and never returned.
type Authenticator struct {
	store    *SessionStore
	provider Provider
	timeout  time.Duration
	logger   *slog.Logger
	observer Observer

	mu         sync.Mutex
	signingOut map[string]bool
	wg         sync.WaitGroup
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(store *SessionStore, provider Provider, timeout time.Duration, logger *slog.Logger) *Authenticator {
	if timeout <= 0 {
		timeout = domain.SignInTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		store:      store,
		provider:   provider,
		timeout:    timeout,
		logger:     logger,
		signingOut: make(map[string]bool),
	}
}

// SetObserver registers a receiver for call results
func (a *Authenticator) SetObserver(o Observer) {
	a.observer = o
}

// SignIn starts resolving the session's identity and returns immediately.
// It reports false when a sign-in is already running for token.
func (a *Authenticator) SignIn(token string) bool {
	if !a.store.BeginResolve(token) {
		return false
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("identity provider panicked", "op", "sign_in", "panic", r)
				a.report("sign_in", fmt.Errorf("provider panic: %v", r))
				if err := a.store.Resolve(token, nil); err != nil {
					a.logger.Debug("session gone before sign in finished", "error", err)
				}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		identity, err := a.provider.SignIn(ctx)
		a.report("sign_in", err)
		if err != nil {
			a.logger.Warn("sign in failed", "error", err)
			identity = nil
		}
		if err := a.store.Resolve(token, identity); err != nil {
			a.logger.Debug("session gone before sign in finished", "error", err)
		}
	}()
	return true
}

// SignOut asks the provider to end the session's identity. On failure the
// session keeps its identity. It reports false when there is nothing to sign
// out or a sign-out is already running.
func (a *Authenticator) SignOut(token string) bool {
	sess, err := a.store.Session(token)
	if err != nil || sess.Resolving || sess.Identity == nil {
		return false
	}

	a.mu.Lock()
	if a.signingOut[token] {
		a.mu.Unlock()
		return false
	}
	a.signingOut[token] = true
	a.mu.Unlock()

	a.wg.Add(1)
	go func(identity *domain.Identity) {
		defer a.wg.Done()
		defer func() {
			a.mu.Lock()
			delete(a.signingOut, token)
			a.mu.Unlock()
		}()
		// The session keeps its identity, same as a failed call
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("identity provider panicked", "op", "sign_out", "panic", r)
				a.report("sign_out", fmt.Errorf("provider panic: %v", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		err := a.provider.SignOut(ctx, identity)
		a.report("sign_out", err)
		if err != nil {
			a.logger.Warn("sign out failed", "user", identity.DisplayName, "error", err)
			return
		}
		if err := a.store.Resolve(token, nil); err != nil {
			a.logger.Debug("session gone before sign out finished", "error", err)
		}
	}(sess.Identity)
	return true
}

// Wait blocks until all running provider calls have finished
func (a *Authenticator) Wait() {
	a.wg.Wait()
}

func (a *Authenticator) report(op string, err error) {
	if a.observer != nil {
		a.observer.AuthResult(op, err)
	}
}
