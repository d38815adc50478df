package auth

import "context"

// Notifier es el puerto hacia el transporte de correo saliente. La entrega es
// asíncrona del lado del proveedor; una falla retorna error envolviendo
// domain.ErrDeliveryFailed y el llamador decide qué reportar.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
