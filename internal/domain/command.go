package domain

import "fmt"

// CommandResult es el resultado normalizado de todo stored procedure de escritura:
// un código entero y un mensaje. Convención del backend relacional:
// Code >= 0 = éxito (en creates, el id de la fila nueva); Code < 0 = falla,
// con Message siempre poblado.
type CommandResult struct {
	Code    int
	Message string
}

// Failed indica si el procedimiento reportó falla. Los llamadores deben
// consultar esto antes de confiar en cualquier id acompañante.
func (r CommandResult) Failed() bool { return r.Code < 0 }

// StoreError transporta el código y mensaje de un CommandResult negativo
// hacia las capas superiores como error de dominio.
type StoreError struct {
	Code    int
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("procedimiento falló (%d): %s", e.Code, e.Message)
}

// NewStoreError construye el error a partir de un resultado fallido.
func NewStoreError(r CommandResult) *StoreError {
	return &StoreError{Code: r.Code, Message: r.Message}
}
