// Package apperr define los errores tipados que cruzan la frontera de I/O.
//
// Los motores (cursos, alertas, clasificador) son totales y no fallan;
// estos tipos sólo aparecen al validar input, al llamar al generador de
// texto o al hablar con el document store.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError: registro mal formado, rechazado antes de llegar a los motores.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// EstimationError: la llamada al generador de texto falló, expiró o devolvió
// un payload que no cumple el schema {refillDate, recommendation}.
type EstimationError struct {
	Reason string
	Cause  error
}

func (e *EstimationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("refill estimation: %s: %v", e.Reason, e.Cause)
	}
	return "refill estimation: " + e.Reason
}

func (e *EstimationError) Unwrap() error { return e.Cause }

// StorageError: create/update/delete/query contra el document store falló.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// Storage envuelve err como StorageError salvo que sea nil o ErrNotFound.
func Storage(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Cause: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsEstimation(err error) bool {
	var ee *EstimationError
	return errors.As(err, &ee)
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// HTTPStatus traduce la taxonomía a un status code. Los handlers mapean
// antes sus sentinels propios (p.ej. límite de plan).
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case IsEstimation(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
