package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
)

// envelope is merged into the top level of every success body.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respond(w http.ResponseWriter, status int, message string, data envelope) {
	body := envelope{"success": true, "message": message}
	for k, v := range data {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrorKindValidation, domain.ErrorKindConflict, domain.ErrorKindPaymentPending:
		return http.StatusBadRequest
	case domain.ErrorKindAuthentication:
		return http.StatusUnauthorized
	case domain.ErrorKindAuthorization:
		return http.StatusForbidden
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// fail writes the error envelope. Server errors are logged and their message
// is replaced.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorWithStack("Request failed", err, "method", r.Method, "path", r.URL.Path, "userID", viewerID(r.Context()))
		message = "internal server error"
	}
	writeJSON(w, status, envelope{"success": false, "error": message})
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return domain.NewValidationError("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return nil
}

func parseID(raw, name string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid %s", name)
	}
	return int32(id), nil
}

func pathID(r *http.Request) (int32, error) {
	return parseID(mux.Vars(r)["id"], "id")
}

// queryInt32 reads an optional integer query parameter.
func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("invalid %s", name)
	}
	return int32(v), nil
}
