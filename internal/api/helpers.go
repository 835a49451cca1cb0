package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to write response: %v", err)
	}
}

type okResponse struct {
	OK bool `json:"ok"`
}

// decodeJSON reads a single JSON object from the request body into dst.
// Malformed bodies become BAD_REQUEST errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &syntaxErr):
			return errors.NewBadRequestError(fmt.Sprintf("body contains badly-formed JSON (at character %d)", syntaxErr.Offset))
		case stderrors.Is(err, io.ErrUnexpectedEOF):
			return errors.NewBadRequestError("body contains badly-formed JSON")
		case stderrors.As(err, &typeErr):
			if typeErr.Field != "" {
				return errors.NewBadRequestError(fmt.Sprintf("body contains incorrect JSON type for field %q", typeErr.Field))
			}
			return errors.NewBadRequestError("body contains incorrect JSON type")
		case stderrors.Is(err, io.EOF):
			return errors.NewBadRequestError("body must not be empty")
		case stderrors.As(err, &tooLarge):
			return errors.NewBadRequestError(fmt.Sprintf("body must not be larger than %d bytes", maxBodyBytes))
		default:
			return errors.NewBadRequestError(err.Error())
		}
	}

	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		return errors.NewBadRequestError("body must only contain a single JSON value")
	}
	return nil
}
