package json

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/talkready/backend/pkg/apperr"
)

func ParseJSON(r *http.Request, model any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}

	return json.NewDecoder(r.Body).Decode(model)
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto the taxonomy code and writes the caller-facing
// message. Detail beyond the message stays in the server logs.
func WriteError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	WriteJSON(w, apperr.HTTPStatus(code), map[string]string{
		"code":  string(code),
		"error": apperr.MessageOf(err),
	})
}
