package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError maps the error taxonomy onto status codes. Storage and other
// unexpected failures are logged and answered with a generic body.
func WriteError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: verr.Message, Field: verr.Field})
	case errors.Is(err, ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Message: capitalize(err.Error())})
	case errors.Is(err, ErrForbidden):
		WriteJSON(w, http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
	case errors.Is(err, ErrUnauthenticated):
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
	default:
		log.Printf("Internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
	}
}

// DecodeJSON reads a request body into dst. A value of the wrong JSON type
// is reported against its field; other malformed bodies have no field.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewValidationError(typeErr.Field, fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value))
	}
	return NewValidationError("", "Invalid request body")
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	}
	return t.String()
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
