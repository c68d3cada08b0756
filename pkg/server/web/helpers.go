package web

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RenderJSON sets the correct HTTP headers for JSON, writes the status code,
// then writes the specified data (typically a struct) encoded in JSON.
func RenderJSON(w http.ResponseWriter, code int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Expires", "-1")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	return enc.Encode(data)
}

// RenderError writes a JSON error payload with the given status code.
func RenderError(w http.ResponseWriter, code int, msg string) {
	if err := RenderJSON(w, code, struct {
		Error string `json:"error"`
	}{msg}); err != nil {
		log.Error().Str("module", "web").Err(err).Msg("Failed to render error payload")
	}
}
