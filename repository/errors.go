// Package repository owns persisted state. Sentinel errors let the
// service and controller layers distinguish failure classes without
// inspecting driver errors directly.
package repository

import "errors"

// ErrReservationNotFound is returned by id-scoped operations when no
// reservation exists for the given id. Controllers translate it into an
// HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")
