// Package gateway exposes TokenCore over HTTP and WebSocket: a
// chi.Router composition with auth and rate-limiting middleware in front
// of direct handlers over an in-process host.Runtime.
package gateway

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"tokencore/core/host"
	"tokencore/gateway/middleware"
)

// Server composes an in-process TokenCore Runtime with the HTTP/WS
// surface entry points are reached through.
type Server struct {
	runtime   *host.Runtime
	auth      *middleware.Authenticator
	limiter   *middleware.RateLimiter
	broadcast *broadcastEmitter
	logger    *slog.Logger
	cache     *balanceCache
	idemDB    *gorm.DB
}

// ServerOption mutates Server defaults during construction.
type ServerOption func(*Server)

// WithBalanceCache attaches a local read-through cache for BalanceOf
// lookups. Without this option, every balance query reads the Runtime's
// backend directly.
func WithBalanceCache(cache *balanceCache) ServerOption {
	return func(s *Server) {
		if s != nil {
			s.cache = cache
		}
	}
}

// WithIdempotency attaches a GORM-backed store for replaying responses to
// retried mutating requests that carry an Idempotency-Key header. Without
// this option, duplicate requests are simply re-executed.
func WithIdempotency(db *gorm.DB) ServerOption {
	return func(s *Server) {
		if s != nil {
			s.idemDB = db
		}
	}
}

// NewServer wires a Server over rt. broadcast must be the same emitter (or
// a fan-out including it) that rt was constructed with via
// host.NewRuntime, so WebSocket subscribers only ever see events from
// committed Dispatch calls, never a reverted one's discarded buffer.
func NewServer(rt *host.Runtime, broadcast *broadcastEmitter, auth *middleware.Authenticator, limiter *middleware.RateLimiter, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		runtime:   rt,
		auth:      auth,
		limiter:   limiter,
		broadcast: broadcast,
		logger:    logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Router builds the chi.Router exposing every TokenCore entry point.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/events", s.handleEventStream)

	r.Group(func(r chi.Router) {
		r.Get("/v1/name", s.handleName)
		r.Get("/v1/symbol", s.handleSymbol)
		r.Get("/v1/decimals", s.handleDecimals)
		r.Get("/v1/total-supply", s.handleTotalSupply)
		r.Get("/v1/balance/{address}", s.handleBalanceOf)
		r.Get("/v1/allowance/{owner}/{spender}", s.handleAllowance)
		r.Get("/v1/minter-allowance/{minter}", s.handleMinterAllowance)
		r.Get("/v1/is-minter/{address}", s.handleIsMinter)
		r.Get("/v1/is-blacklisted/{address}", s.handleIsBlacklisted)
		r.Get("/v1/is-paused", s.handleIsPaused)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Use(middleware.Idempotency(s.idemDB))
		mutate := func(path, scope string, handler http.HandlerFunc) {
			r.With(s.auth.Middleware(scope)).Post(path, handler)
		}
		mutate("/v1/transfer", "transfer", s.handleTransfer)
		mutate("/v1/approve", "approve", s.handleApprove)
		mutate("/v1/increase-allowance", "approve", s.handleIncreaseAllowance)
		mutate("/v1/decrease-allowance", "approve", s.handleDecreaseAllowance)
		mutate("/v1/transfer-from", "transfer_from", s.handleTransferFrom)
		mutate("/v1/mint", "mint", s.handleMint)
		mutate("/v1/burn", "burn", s.handleBurn)
		mutate("/v1/pause", "pause", s.handlePause)
		mutate("/v1/unpause", "pause", s.handleUnpause)
		mutate("/v1/blacklist", "blacklist", s.handleBlacklist)
		mutate("/v1/unblacklist", "blacklist", s.handleUnblacklist)
		mutate("/v1/update-blacklister", "admin", s.handleUpdateBlacklister)
		mutate("/v1/configure-controller", "admin", s.handleConfigureController)
		mutate("/v1/remove-controller", "admin", s.handleRemoveController)
		mutate("/v1/remove-minter", "admin", s.handleRemoveMinter)
		mutate("/v1/configure-minter-allowance", "admin", s.handleConfigureMinterAllowance)
		mutate("/v1/increase-minter-allowance", "admin", s.handleIncreaseMinterAllowance)
		mutate("/v1/decrease-minter-allowance", "admin", s.handleDecreaseMinterAllowance)
	})

	return r
}
