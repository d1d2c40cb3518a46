package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

// BindError converts a request body decoding failure into an AppError. Type
// mismatches and unreadable JSON are validation failures like a missing field.
func BindError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		return apperrors.BadRequest(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperrors.Validation(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type), err)
	case errors.As(err, &typeErr):
		return apperrors.Validation(fmt.Sprintf("request body must be a JSON object, got %s", typeErr.Value), err)
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.Validation("request body must be valid JSON", err)
	default:
		return apperrors.Validation("invalid request body", err)
	}
}
