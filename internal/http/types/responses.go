// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const (
	ErrorKindInvalidRequest = "invalid_request"
	ErrorKindInternal       = "internal_error"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the single error shape returned by every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrInvalidRequest wraps every decoding and validation failure of DecodeJSON.
var ErrInvalidRequest = errors.New("invalid request")

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:  status,
			Error:   kind,
			Message: message,
		},
	)
}

// DecodeJSON reads a single JSON document from r into v and runs the struct
// validation tags of v.
func DecodeJSON(r *http.Request, v any, validate *validator.Validate) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}

	if validate == nil {
		return nil
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, validationMessage(err))
	}

	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("field %s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}

	return fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag())
}
