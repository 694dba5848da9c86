package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/odvcencio/maestro/internal/auth"
)

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseOptionalQueryPositiveInt returns def when key is absent and writes a
// 400 when it is present but not a positive integer.
func parseOptionalQueryPositiveInt(w http.ResponseWriter, r *http.Request, key, label string, def int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		jsonError(w, fmt.Sprintf("invalid %s query parameter", label), http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

// parseOptionalQueryBool returns nil when key is absent.
func parseOptionalQueryBool(w http.ResponseWriter, r *http.Request, key string) (*bool, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		jsonError(w, fmt.Sprintf("invalid %s query parameter", key), http.StatusBadRequest)
		return nil, false
	}
	return &value, true
}

// decodeJSONBody decodes a single JSON object. An empty body is allowed when
// allowEmpty is set and leaves dst untouched.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return true
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// sessionID is the key for the caller's connection overlay.
func sessionID(r *http.Request) string {
	if claims := auth.GetClaims(r.Context()); claims != nil {
		return claims.SessionID()
	}
	return ""
}

// sessionExpiry is when the caller's token, and so its overlay, expires.
func sessionExpiry(r *http.Request) time.Time {
	if claims := auth.GetClaims(r.Context()); claims != nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return time.Time{}
}
