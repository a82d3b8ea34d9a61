package interfaces

import "context"

// WarmupClient precarga la caché para una lista de monedas en el arranque,
// para que las primeras consultas HTTP no paguen la latencia del upstream.
type WarmupClient interface {
	WarmUp(ctx context.Context, currencies []string) error
}
