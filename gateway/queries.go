package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tokencore/core/types"
	"tokencore/storage"
	"tokencore/token"
)

// query runs fn against the Runtime's durable backend through its
// read-only Query path, constructing a fresh TokenCore for the call.
func (s *Server) query(fn func(core *token.TokenCore) error) error {
	return s.runtime.Query(func(store storage.Backend) error {
		core := token.New(store)
		return fn(core)
	})
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	var name string
	err := s.query(func(core *token.TokenCore) error {
		var innerErr error
		name, innerErr = core.Name()
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleSymbol(w http.ResponseWriter, r *http.Request) {
	var symbol string
	err := s.query(func(core *token.TokenCore) error {
		var innerErr error
		symbol, innerErr = core.Symbol()
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"symbol": symbol})
}

func (s *Server) handleDecimals(w http.ResponseWriter, r *http.Request) {
	var decimals uint8
	err := s.query(func(core *token.TokenCore) error {
		var innerErr error
		decimals, innerErr = core.Decimals()
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint8{"decimals": decimals})
}

func (s *Server) handleTotalSupply(w http.ResponseWriter, r *http.Request) {
	var supply types.Amount
	err := s.query(func(core *token.TokenCore) error {
		var innerErr error
		supply, innerErr = core.TotalSupply()
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"total_supply": supply.String()})
}

func (s *Server) handleBalanceOf(w http.ResponseWriter, r *http.Request) {
	addressParam := chi.URLParam(r, "address")
	account, err := types.DecodeAddress(addressParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if s.cache != nil {
		if cached, age, ok, cacheErr := s.cache.get(addressParam); cacheErr == nil && ok && age < balanceCacheTTL {
			writeJSON(w, http.StatusOK, map[string]string{"balance": cached})
			return
		}
	}

	var balance types.Amount
	err = s.query(func(core *token.TokenCore) error {
		var innerErr error
		balance, innerErr = core.BalanceOf(account)
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}

	if s.cache != nil {
		_ = s.cache.put(addressParam, balance.String())
	}

	writeJSON(w, http.StatusOK, map[string]string{"balance": balance.String()})
}

func (s *Server) handleAllowance(w http.ResponseWriter, r *http.Request) {
	owner, err := types.DecodeAddress(chi.URLParam(r, "owner"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	spender, err := types.DecodeAddress(chi.URLParam(r, "spender"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var allowance types.Amount
	err = s.query(func(core *token.TokenCore) error {
		var innerErr error
		allowance, innerErr = core.Allowance(owner, spender)
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"allowance": allowance.String()})
}

func (s *Server) handleMinterAllowance(w http.ResponseWriter, r *http.Request) {
	minter, err := types.DecodeAddress(chi.URLParam(r, "minter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var allowance types.Amount
	err = s.query(func(core *token.TokenCore) error {
		var innerErr error
		allowance, innerErr = core.MinterAllowance(minter)
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"minter_allowance": allowance.String()})
}

func (s *Server) handleIsMinter(w http.ResponseWriter, r *http.Request) {
	account, err := types.DecodeAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var isMinter bool
	err = s.query(func(core *token.TokenCore) error {
		var innerErr error
		isMinter, innerErr = core.IsMinter(account)
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_minter": isMinter})
}

func (s *Server) handleIsPaused(w http.ResponseWriter, r *http.Request) {
	var paused bool
	err := s.query(func(core *token.TokenCore) error {
		var innerErr error
		paused, innerErr = core.IsPaused()
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"paused": paused})
}

func (s *Server) handleIsBlacklisted(w http.ResponseWriter, r *http.Request) {
	account, err := types.DecodeAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var isBlacklisted bool
	err = s.query(func(core *token.TokenCore) error {
		var innerErr error
		isBlacklisted, innerErr = core.IsBlacklisted(account)
		return innerErr
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_blacklisted": isBlacklisted})
}
