package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tokencore/core/types"
	"tokencore/gateway/middleware"
)

// resolveCaller returns the invoking principal's Address: the
// authenticated token's "sub" claim when auth populated one, otherwise
// the request body's explicit "caller" field (the escape hatch local
// development and tests use with auth disabled).
func resolveCaller(r *http.Request, bodyCaller string) (types.Address, error) {
	if subject, ok := r.Context().Value(middleware.ContextKeyCaller).(string); ok && subject != "" {
		return types.DecodeAddress(subject)
	}
	if bodyCaller == "" {
		return types.Address{}, fmt.Errorf("gateway: caller address required")
	}
	return types.DecodeAddress(bodyCaller)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseAmount(s string) (types.Amount, error) {
	amount, ok := types.AmountFromDecimal(s)
	if !ok {
		return types.Amount{}, fmt.Errorf("gateway: invalid amount %q", s)
	}
	return amount, nil
}
