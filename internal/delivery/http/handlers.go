package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mmuslimabdulj/modex/internal/auth"
	"github.com/mmuslimabdulj/modex/internal/config"
	"github.com/mmuslimabdulj/modex/internal/delivery/ws"
	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/fixture"
	"github.com/mmuslimabdulj/modex/internal/metrics"
	"github.com/mmuslimabdulj/modex/internal/middleware"
	"github.com/mmuslimabdulj/modex/internal/panel"
	"github.com/mmuslimabdulj/modex/internal/selector"
	"github.com/mmuslimabdulj/modex/view/pages"
)

// Deps are the collaborators a Handler needs
type Deps struct {
	Config        *config.Config
	Sessions      *auth.SessionStore
	Authenticator *auth.Authenticator
	Selectors     *selector.Store
	Roster        fixture.RosterSource
	Conversations fixture.ConversationSource
	Hub           *ws.Hub
	Metrics       *metrics.Metrics // optional
	Logger        *slog.Logger
}

type Handler struct {
	Deps
	upgrader    websocket.Upgrader
	authLimiter *middleware.IPRateLimiter
	wsLimiter   *middleware.IPRateLimiter
}

func NewHandler(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	h := &Handler{
		Deps:        d,
		authLimiter: middleware.NewIPRateLimiter("auth", d.Config.RateLimitAuth, 5),
		wsLimiter:   middleware.NewIPRateLimiter("ws", d.Config.RateLimitWS, 10),
	}
	if d.Metrics != nil {
		h.authLimiter.SetObserver(d.Metrics)
		h.wsLimiter.SetObserver(d.Metrics)
	}
	// A session's selector goes away when the session ends or expires
	d.Sessions.Subscribe(d.Selectors)
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  512,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return d.Config.IsOriginAllowed(r.Header.Get("Origin"))
		},
	}
	return h
}

// Routes builds the router with all middleware applied
func (h *Handler) Routes() http.Handler {
	// Peer ids arrive as one escaped path segment
	r := mux.NewRouter().UseEncodedPath()

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics.Handler()).Methods(http.MethodGet)
	}

	pagesRouter := r.NewRoute().Subrouter()
	pagesRouter.Use(middleware.NoStore)
	pagesRouter.HandleFunc("/", h.HandleApp).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/login", h.HandleLogin).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/auth/signin", middleware.RateLimitFunc(h.authLimiter, h.HandleSignIn)).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/auth/signout", middleware.RateLimitFunc(h.authLimiter, h.HandleSignOut)).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/panel/{panel}", h.HandleSelectPanel).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/peer/{id}", h.HandleOpenConversation).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/compose", h.HandleCompose).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/compose/clear", h.HandleClearDraft).Methods(http.MethodPost)

	r.HandleFunc("/ws/session", middleware.RateLimitFunc(h.wsLimiter, h.HandleSessionSocket)).Methods(http.MethodGet)

	var obs middleware.RequestObserver
	if h.Metrics != nil {
		obs = h.Metrics
	}
	r.Use(middleware.RequestLog(h.Logger, obs))
	r.Use(middleware.SecurityHeaders)
	return r
}

// HandleHealth reports liveness
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}

// HandleApp serves the gated shell: loading page, login redirect or sidebar + panel
func (h *Handler) HandleApp(w http.ResponseWriter, r *http.Request) {
	token, sess := h.session(r)

	switch h.decide(token, sess) {
	case auth.OutcomeLoading:
		h.render(w, r, pages.Loading())
		return
	case auth.OutcomeRedirectToLogin:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	roster, err := h.Roster.Roster(r.Context())
	if err != nil {
		h.Logger.Error("load roster", "error", err)
		http.Error(w, "Failed to load roster", http.StatusInternalServerError)
		return
	}

	state := h.Selectors.Get(token, roster)

	var messages []domain.Message
	if _, ok := panel.FindPeer(roster, state.SelectedPeer); ok && state.ActivePanel == domain.PanelDirectMessages {
		messages, err = h.Conversations.Conversation(r.Context(), state.SelectedPeer)
		if err != nil {
			h.Logger.Error("load conversation", "peer", state.SelectedPeer, "error", err)
			http.Error(w, "Failed to load conversation", http.StatusInternalServerError)
			return
		}
	}

	view, err := panel.Dispatch(state, roster, messages)
	if err != nil {
		// Closed enum: reaching here is a programming error upstream
		h.Logger.Error("panel dispatch", "panel", state.ActivePanel, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	component, err := pages.Shell(panel.BuildSidebar(state, roster, sess.Identity), view)
	if err != nil {
		h.Logger.Error("panel render", "panel", state.ActivePanel, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if h.Metrics != nil {
		h.Metrics.PanelRenders.WithLabelValues(string(view.Panel)).Inc()
	}
	h.render(w, r, component)
}

// HandleLogin serves the sign-in page; signed-in visitors go back to the app
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	token, sess := h.session(r)

	switch h.decide(token, sess) {
	case auth.OutcomeLoading:
		h.render(w, r, pages.Loading())
	case auth.OutcomeRenderChildren:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		h.render(w, r, pages.Login())
	}
}

// HandleSignIn starts a sign-in and sends the browser to the gated app,
// which shows the loading page until the provider answers
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	token, sess := h.session(r)
	if token == "" {
		token = h.Sessions.Create()
		h.setCookie(w, token)
	}
	if sess.Identity == nil && !h.Authenticator.SignIn(token) {
		h.Logger.Debug("sign in already running")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSignOut starts a sign-out. The page stays as it is until the
// provider confirms; a failure leaves the visitor signed in.
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	token, _ := h.session(r)
	if token != "" && !h.Authenticator.SignOut(token) {
		h.Logger.Debug("nothing to sign out or sign out already running")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSelectPanel switches the active panel
func (h *Handler) HandleSelectPanel(w http.ResponseWriter, r *http.Request) {
	p, err := domain.ParsePanel(mux.Vars(r)["panel"])
	if err != nil {
		http.Error(w, "Unknown panel", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(s *selector.Selector) { s.SelectPanel(p) })
}

// HandleOpenConversation selects a peer and shows direct messages.
// Unknown ids are accepted; the panel renders its empty state for them.
func (h *Handler) HandleOpenConversation(w http.ResponseWriter, r *http.Request) {
	peerID, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid peer", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(s *selector.Selector) { s.OpenConversation(peerID) })
}

// HandleCompose stores the compose draft. Sending is not implemented.
func (h *Handler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	draft := r.PostFormValue("draft")
	h.mutate(w, r, func(s *selector.Selector) { s.SetDraft(draft) })
}

// HandleClearDraft empties the compose draft
func (h *Handler) HandleClearDraft(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *selector.Selector) { s.ClearDraft() })
}

// HandleSessionSocket upgrades to the websocket that pushes session changes
func (h *Handler) HandleSessionSocket(w http.ResponseWriter, r *http.Request) {
	token, _ := h.session(r)
	if token == "" {
		http.Error(w, "Session required", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.Hub, conn, token)
	h.Hub.Register(client)

	// The state may have changed between page render and socket open
	current := domain.Session{}
	if sess, err := h.Sessions.Session(token); err == nil {
		current = sess
	}
	if data, err := ws.EncodeSessionState(auth.Decide(current)); err == nil {
		client.Send(data)
	}

	go client.WritePump()
	go client.ReadPump()
}

// mutate applies fn to the caller's selector and redirects back to the app
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(*selector.Selector)) {
	token, sess := h.session(r)
	if h.decide(token, sess) != auth.OutcomeRenderChildren {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	roster, err := h.Roster.Roster(r.Context())
	if err != nil {
		h.Logger.Error("load roster", "error", err)
		http.Error(w, "Failed to load roster", http.StatusInternalServerError)
		return
	}
	h.Selectors.Update(token, roster, fn)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// session reads the cookie token and its snapshot. An unknown token yields
// an empty token and an anonymous session.
func (h *Handler) session(r *http.Request) (string, domain.Session) {
	cookie, err := r.Cookie(domain.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", domain.Session{}
	}
	sess, err := h.Sessions.Session(cookie.Value)
	if err != nil {
		if !errors.Is(err, auth.ErrSessionNotFound) {
			h.Logger.Warn("read session", "error", err)
		}
		return "", domain.Session{}
	}
	return cookie.Value, sess
}

// decide runs the gate and forgets view state for signed-out sessions
func (h *Handler) decide(token string, sess domain.Session) auth.Outcome {
	outcome := auth.Decide(sess)
	if outcome == auth.OutcomeRedirectToLogin && token != "" {
		h.Selectors.Remove(token)
	}
	if h.Metrics != nil {
		h.Metrics.GateOutcomes.WithLabelValues(outcome.String()).Inc()
	}
	return outcome
}

func (h *Handler) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Config.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// render writes a full page; a failed render after headers are sent is only logged
func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.Logger.Error("render page", "path", r.URL.Path, "error", err)
	}
}
