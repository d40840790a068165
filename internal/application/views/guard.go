package views

import "sync"

// SubmitGuard impide dos envíos simultáneos del mismo formulario.
// Es el único estado compartido entre peticiones.
type SubmitGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{inflight: make(map[string]struct{})}
}

// TryAcquire reserva key; false si ya hay un envío en curso con esa clave.
func (g *SubmitGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

// Release libera key.
func (g *SubmitGuard) Release(key string) {
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
}
