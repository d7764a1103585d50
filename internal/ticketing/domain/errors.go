package domain

import (
	"errors"
	"fmt"
)

// ValidationError indica um parâmetro obrigatório ausente ou inválido na requisição.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError embrulha qualquer falha da camada de persistência. A mensagem
// é a do driver, sem prefixo, porque é devolvida ao cliente como está.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

var ErrReferenceNotFound = errors.New("reference not found")

// ReferenceNotFoundError indica que uma referência (ex.: connection_id) não existe.
type ReferenceNotFoundError struct {
	Entity string
	ID     int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}
