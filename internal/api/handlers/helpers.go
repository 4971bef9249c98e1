package handlers

import (
	"encoding/json"
	"errors"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/services"
	"io"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod writes a 405 and returns false when r.Method is not the expected one.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON decodes exactly one JSON object with no unknown fields.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func isInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidTimeFormat) ||
		errors.Is(err, domain.ErrInvalidCoordinate) ||
		errors.Is(err, domain.ErrInvalidJob) ||
		errors.Is(err, services.ErrUnknownStrategy)
}

// writeServiceError exposes validation failures to the client and hides everything else.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if isInvalidInput(err) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("%s failed: method=%s path=%s err=%v", op, r.Method, r.URL.Path, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
