package gateway

import (
	"errors"
	"net/http"

	coreerrors "tokencore/core/errors"
)

// statusFor maps a TokenCore revert to the HTTP status the gateway
// surfaces it as. The numeric Code travels in the JSON body regardless,
// for clients that want the stable taxonomy rather than the HTTP status.
func statusFor(err error) int {
	var coreErr *coreerrors.CoreError
	if !errors.As(err, &coreErr) {
		return http.StatusInternalServerError
	}
	switch coreErr.Code {
	case coreerrors.CodeInsufficientRights, coreerrors.CodeMissingController, coreerrors.CodeMissingBlacklister:
		return http.StatusForbidden
	case coreerrors.CodeContractIsPaused, coreerrors.CodeMintBurnDisabled:
		return http.StatusServiceUnavailable
	case coreerrors.CodeInsufficientBalance, coreerrors.CodeInsufficientAllowance, coreerrors.CodeInsufficientMinterAllowance:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeCoreError(w http.ResponseWriter, err error) {
	var coreErr *coreerrors.CoreError
	if errors.As(err, &coreErr) {
		writeJSON(w, statusFor(err), map[string]interface{}{
			"error": coreErr.Error(),
			"code":  uint32(coreErr.Code),
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}
