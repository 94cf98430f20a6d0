package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// ErrorCodeToHTTPStatus maps application error codes to HTTP status codes.
// Both domain codes and tax-layer codes are handled here so webhook
// responses carry a meaningful status regardless of which layer failed.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID, taxes.CodeMissingField, taxes.CodeConfiguration:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ENOTIMPL:
		return http.StatusNotImplemented
	case domain.EUPSTREAM, taxes.CodeProvider:
		return http.StatusBadGateway
	case domain.EINTERNAL:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope returned to webhook callers.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorResponse writes an error as a JSON response. The status code and
// caller-facing message are derived from the error's code; internal
// details never reach the caller.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	if status >= 500 {
		slog.Default().Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"op", domain.ErrorOp(err),
			"error", err,
		)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = domain.ErrorMessage(err)

	JSON(w, status, body)
}

// NotFoundResponse writes a 404 JSON response. It backs the router's
// unknown-route fallback so every error leaving the service uses the
// same envelope.
func NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.NotFound("handler.not_found", "route", r.URL.Path))
}

// JSON encodes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}
