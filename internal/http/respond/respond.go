// Package respond writes JSON responses and maps domain errors onto a
// stable machine-readable error envelope.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openbooks-dev/openbooks/internal/account"
	"github.com/openbooks-dev/openbooks/internal/fiscalyear"
	"github.com/openbooks-dev/openbooks/internal/inventory"
	"github.com/openbooks-dev/openbooks/internal/permission"
	"github.com/openbooks-dev/openbooks/internal/tenant"
	"github.com/openbooks-dev/openbooks/internal/voucher"
)

// Stable error codes. Clients branch on these, never on message text.
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeTenantRequired    = "TENANT_REQUIRED"
	CodePeriodClosed      = "PERIOD_CLOSED"
	CodeUnbalancedVoucher = "UNBALANCED_VOUCHER"
	CodeAccountMismatch   = "ACCOUNT_MISMATCH"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func ErrorCode(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	JSON(w, status, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

func BadRequest(w http.ResponseWriter, message string) {
	ErrorCode(w, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// Error maps a domain error onto its envelope. Unknown errors become a
// generic internal failure so store details never leak to clients.
func Error(w http.ResponseWriter, err error) {
	var (
		periodErr     *fiscalyear.PeriodClosedError
		unbalancedErr *voucher.UnbalancedError
		mismatchErr   *voucher.AccountMismatchError
	)

	switch {
	case errors.Is(err, permission.ErrUnauthenticated):
		ErrorCode(w, http.StatusUnauthorized, CodeUnauthenticated, err.Error(), nil)

	case errors.Is(err, permission.ErrForbidden):
		ErrorCode(w, http.StatusForbidden, CodeForbidden, err.Error(), nil)

	case errors.Is(err, tenant.ErrTenantRequired):
		ErrorCode(w, http.StatusBadRequest, CodeTenantRequired, err.Error(), nil)

	case errors.As(err, &periodErr):
		ErrorCode(w, http.StatusConflict, CodePeriodClosed, periodErr.Error(), map[string]any{
			"date":       periodErr.Date.Format(time.DateOnly),
			"start_date": periodErr.StartDate.Format(time.DateOnly),
			"end_date":   periodErr.EndDate.Format(time.DateOnly),
		})

	case errors.Is(err, fiscalyear.ErrPeriodClosed):
		ErrorCode(w, http.StatusConflict, CodePeriodClosed, err.Error(), nil)

	case errors.As(err, &unbalancedErr):
		ErrorCode(w, http.StatusUnprocessableEntity, CodeUnbalancedVoucher, unbalancedErr.Error(), map[string]any{
			"date":        unbalancedErr.Date.Format(time.DateOnly),
			"sum":         unbalancedErr.Sum.String(),
			"entry_count": unbalancedErr.EntryCount,
		})

	case errors.Is(err, voucher.ErrUnbalanced):
		ErrorCode(w, http.StatusUnprocessableEntity, CodeUnbalancedVoucher, err.Error(), nil)

	case errors.As(err, &mismatchErr):
		ErrorCode(w, http.StatusUnprocessableEntity, CodeAccountMismatch, mismatchErr.Error(), map[string]any{
			"account_id": mismatchErr.AccountID.String(),
		})

	case errors.Is(err, voucher.ErrAccountMismatch):
		ErrorCode(w, http.StatusUnprocessableEntity, CodeAccountMismatch, err.Error(), nil)

	case errors.Is(err, voucher.ErrAlreadyReversed),
		errors.Is(err, account.ErrCodeTaken),
		errors.Is(err, fiscalyear.ErrOverlap):
		ErrorCode(w, http.StatusConflict, CodeConflict, err.Error(), nil)

	case errors.Is(err, voucher.ErrNotFound),
		errors.Is(err, account.ErrNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, fiscalyear.ErrNotFound),
		errors.Is(err, tenant.ErrNotFound):
		ErrorCode(w, http.StatusNotFound, CodeNotFound, err.Error(), nil)

	default:
		slog.Error("request failed", "error", err)
		ErrorCode(w, http.StatusInternalServerError, CodeInternal, "internal error", nil)
	}
}
