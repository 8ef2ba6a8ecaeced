// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the typed failure returned for every unsuccessful API call.
// Status is 0 for transport-level failures. Detail carries the server's
// own "detail" message when the response had one; Message is always set
// and always printable to an end user.
type Error struct {
	Status  int
	Detail  string
	Message string
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

// newError maps an HTTP status to a printable message, preferring the
// server-provided detail where the status makes it trustworthy.
func newError(status int, detail string) *Error {
	var msg string
	switch status {
	case http.StatusBadRequest:
		msg = orDefault(detail, "invalid request parameters")
	case http.StatusUnauthorized:
		msg = "authentication failed, please log in again"
	case http.StatusForbidden:
		msg = "insufficient permissions to access this resource"
	case http.StatusNotFound:
		msg = "the requested resource does not exist"
	case http.StatusUnprocessableEntity:
		msg = orDefault(detail, "request validation failed")
	case http.StatusInternalServerError:
		msg = "server error, please try again later"
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		msg = "service temporarily unavailable, please try again later"
	default:
		msg = orDefault(detail, fmt.Sprintf("request failed (%d)", status))
	}
	return &Error{Status: status, Detail: detail, Message: msg}
}

// Detail returns the server-provided detail of err when err wraps an API
// error that carried one, else "".
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// IsStatus reports whether err is an API error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
