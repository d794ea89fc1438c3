package gateway

import (
	"errors"
	"net/http"

	coreerrors "tokencore/core/errors"
	"tokencore/core/events"
	"tokencore/core/types"
	"tokencore/observability/metrics"
	"tokencore/storage"
	"tokencore/token"
)

// dispatch runs fn through the Server's Runtime, observing operation and
// revert metrics. Successful calls flush their buffered events through
// whatever emitter the Runtime was constructed with (which includes the
// Server's broadcast emitter); dispatch itself never touches the event
// path, so a reverted call's buffered events never reach a subscriber.
func (s *Server) dispatch(operation string, fn func(core *token.TokenCore, emit events.Emitter) error) error {
	metrics.Token().ObserveOperation(operation)
	err := s.runtime.Dispatch(func(store storage.Backend, emit events.Emitter) error {
		core := token.New(store)
		return fn(core, emit)
	})
	if err != nil {
		metrics.Token().ObserveRevert(operation, errorCode(err))
		return err
	}
	s.syncGauges()
	return nil
}

// syncGauges refreshes the sticky paused/total-supply gauges from the
// ledger after a successful mutation. Read-only queries never touch these
// gauges directly since nothing there can change either value.
func (s *Server) syncGauges() {
	_ = s.runtime.Query(func(store storage.Backend) error {
		core := token.New(store)
		if paused, err := core.IsPaused(); err == nil {
			metrics.Token().SetPaused(paused)
		}
		if supply, err := core.TotalSupply(); err == nil {
			metrics.Token().SetTotalSupply(supply.Float64())
		}
		return nil
	})
}

type transferRequest struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipient, err := types.DecodeAddress(req.Recipient)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch("transfer", func(core *token.TokenCore, emit events.Emitter) error {
		return core.Transfer(caller, emit, recipient, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type allowanceRequest struct {
	Caller  string `json:"caller"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	s.handleAllowanceOp(w, r, "approve", (*token.TokenCore).Approve)
}

func (s *Server) handleIncreaseAllowance(w http.ResponseWriter, r *http.Request) {
	s.handleAllowanceOp(w, r, "increase_allowance", (*token.TokenCore).IncreaseAllowance)
}

func (s *Server) handleDecreaseAllowance(w http.ResponseWriter, r *http.Request) {
	s.handleAllowanceOp(w, r, "decrease_allowance", (*token.TokenCore).DecreaseAllowance)
}

func (s *Server) handleAllowanceOp(w http.ResponseWriter, r *http.Request, operation string, op func(*token.TokenCore, types.Address, events.Emitter, types.Address, types.Amount) error) {
	var req allowanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	spender, err := types.DecodeAddress(req.Spender)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch(operation, func(core *token.TokenCore, emit events.Emitter) error {
		return op(core, caller, emit, spender, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type transferFromRequest struct {
	Caller    string `json:"caller"`
	Owner     string `json:"owner"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (s *Server) handleTransferFrom(w http.ResponseWriter, r *http.Request) {
	var req transferFromRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	owner, err := types.DecodeAddress(req.Owner)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipient, err := types.DecodeAddress(req.Recipient)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch("transfer_from", func(core *token.TokenCore, emit events.Emitter) error {
		return core.TransferFrom(caller, emit, owner, recipient, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type mintRequest struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipient, err := types.DecodeAddress(req.Recipient)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch("mint", func(core *token.TokenCore, emit events.Emitter) error {
		return core.Mint(caller, emit, recipient, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type burnRequest struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

func (s *Server) handleBurn(w http.ResponseWriter, r *http.Request) {
	var req burnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch("burn", func(core *token.TokenCore, emit events.Emitter) error {
		return core.Burn(caller, emit, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type callerOnlyRequest struct {
	Caller string `json:"caller"`
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.handleCallerOnlyOp(w, r, "pause", (*token.TokenCore).Pause)
}

func (s *Server) handleUnpause(w http.ResponseWriter, r *http.Request) {
	s.handleCallerOnlyOp(w, r, "unpause", (*token.TokenCore).Unpause)
}

func (s *Server) handleRemoveMinter(w http.ResponseWriter, r *http.Request) {
	s.handleCallerOnlyOp(w, r, "remove_minter", (*token.TokenCore).RemoveMinter)
}

func (s *Server) handleCallerOnlyOp(w http.ResponseWriter, r *http.Request, operation string, op func(*token.TokenCore, types.Address, events.Emitter) error) {
	var req callerOnlyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch(operation, func(core *token.TokenCore, emit events.Emitter) error {
		return op(core, caller, emit)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type accountRequest struct {
	Caller  string `json:"caller"`
	Account string `json:"account"`
}

func (s *Server) handleBlacklist(w http.ResponseWriter, r *http.Request) {
	s.handleAccountOp(w, r, "blacklist", (*token.TokenCore).Blacklist)
}

func (s *Server) handleUnblacklist(w http.ResponseWriter, r *http.Request) {
	s.handleAccountOp(w, r, "unblacklist", (*token.TokenCore).Unblacklist)
}

func (s *Server) handleUpdateBlacklister(w http.ResponseWriter, r *http.Request) {
	s.handleAccountOp(w, r, "update_blacklister", (*token.TokenCore).UpdateBlacklister)
}

func (s *Server) handleAccountOp(w http.ResponseWriter, r *http.Request, operation string, op func(*token.TokenCore, types.Address, events.Emitter, types.Address) error) {
	var req accountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	account, err := types.DecodeAddress(req.Account)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch(operation, func(core *token.TokenCore, emit events.Emitter) error {
		return op(core, caller, emit, account)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type configureControllerRequest struct {
	Caller     string `json:"caller"`
	Controller string `json:"controller"`
	Minter     string `json:"minter"`
}

func (s *Server) handleConfigureController(w http.ResponseWriter, r *http.Request) {
	var req configureControllerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	controller, err := types.DecodeAddress(req.Controller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	minter, err := types.DecodeAddress(req.Minter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch("configure_controller", func(core *token.TokenCore, emit events.Emitter) error {
		return core.ConfigureController(caller, emit, controller, minter)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveController(w http.ResponseWriter, r *http.Request) {
	s.handleAccountOp(w, r, "remove_controller", (*token.TokenCore).RemoveController)
}

type minterAllowanceRequest struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

func (s *Server) handleConfigureMinterAllowance(w http.ResponseWriter, r *http.Request) {
	s.handleMinterAllowanceOp(w, r, "configure_minter_allowance", (*token.TokenCore).ConfigureMinterAllowance)
}

func (s *Server) handleIncreaseMinterAllowance(w http.ResponseWriter, r *http.Request) {
	s.handleMinterAllowanceOp(w, r, "increase_minter_allowance", (*token.TokenCore).IncreaseMinterAllowance)
}

func (s *Server) handleDecreaseMinterAllowance(w http.ResponseWriter, r *http.Request) {
	s.handleMinterAllowanceOp(w, r, "decrease_minter_allowance", (*token.TokenCore).DecreaseMinterAllowance)
}

func (s *Server) handleMinterAllowanceOp(w http.ResponseWriter, r *http.Request, operation string, op func(*token.TokenCore, types.Address, events.Emitter, types.Amount) error) {
	var req minterAllowanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := resolveCaller(r, req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err = s.dispatch(operation, func(core *token.TokenCore, emit events.Emitter) error {
		return op(core, caller, emit, amount)
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func errorCode(err error) string {
	var coreErr *coreerrors.CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Code.String()
	}
	return "unknown"
}
