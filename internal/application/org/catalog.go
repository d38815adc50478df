package org

import (
	"context"

	"github.com/jhoicas/hrms-api/internal/domain"
)

// CatalogUseCase es el servicio genérico de entidad sobre el protocolo de
// comandos: Department, Designation y Post son instancias del mismo patrón,
// no tres copias a mano. Un resultado negativo del procedimiento se convierte
// en domain.StoreError y jamás expone un id al llamador.
type CatalogUseCase[E any] struct {
	store CatalogStore[E]
}

// NewCatalogUseCase construye el servicio para una entidad de catálogo.
func NewCatalogUseCase[E any](store CatalogStore[E]) *CatalogUseCase[E] {
	return &CatalogUseCase[E]{store: store}
}

// List devuelve todas las filas del procedimiento de lectura.
func (uc *CatalogUseCase[E]) List(ctx context.Context) ([]E, error) {
	return uc.store.List(ctx)
}

// Create invoca el procedimiento de creación. En éxito el código del
// resultado es el id asignado a la fila nueva.
func (uc *CatalogUseCase[E]) Create(ctx context.Context, e *E) (int, error) {
	res, err := uc.store.Create(ctx, e)
	if err != nil {
		return 0, err
	}
	if res.Failed() {
		return 0, domain.NewStoreError(res)
	}
	return res.Code, nil
}

// Update invoca el procedimiento de actualización.
func (uc *CatalogUseCase[E]) Update(ctx context.Context, id int, e *E) error {
	res, err := uc.store.Update(ctx, id, e)
	if err != nil {
		return err
	}
	if res.Failed() {
		return domain.NewStoreError(res)
	}
	return nil
}

// Delete invoca el procedimiento de borrado.
func (uc *CatalogUseCase[E]) Delete(ctx context.Context, id int) error {
	res, err := uc.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if res.Failed() {
		return domain.NewStoreError(res)
	}
	return nil
}
