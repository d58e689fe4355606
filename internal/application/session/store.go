// Package session maneja el estado de sesión del panel admin: un id opaco
// viaja en la cookie y los datos viven del lado del servidor.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Datos identidad del comerciante logueado, guardada en la sesión.
type Datos struct {
	ComercianteID int64
	Email         string
	Nombre        string
	Slug          string
}

// Store puerto del almacén de sesiones. La implementación en memoria sirve
// para un solo proceso; un almacén externo puede reemplazarla sin tocar los
// handlers.
type Store interface {
	// Create guarda los datos y devuelve el id opaco de la sesión.
	Create(ctx context.Context, datos Datos) (string, error)
	// Get devuelve los datos si la sesión existe y no expiró.
	Get(ctx context.Context, id string) (Datos, bool)
	// Destroy elimina la sesión del lado del servidor.
	Destroy(ctx context.Context, id string) error
}

type entrada struct {
	datos  Datos
	expira time.Time
}

// MemoryStore implementación en memoria con TTL fijo. La expiración se
// verifica en cada lectura; un janitor periódico poda entradas vencidas para
// que el mapa no crezca con sesiones abandonadas.
type MemoryStore struct {
	mu       sync.RWMutex
	sesiones map[string]entrada
	ttl      time.Duration
	ahora    func() time.Time
	done     chan struct{}
}

// NewMemoryStore crea el almacén con el TTL indicado y arranca el janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sesiones: make(map[string]entrada),
		ttl:      ttl,
		ahora:    time.Now,
		done:     make(chan struct{}),
	}
	go s.janitor(ttl)
	return s
}

// Create guarda los datos bajo un uuid nuevo.
func (s *MemoryStore) Create(_ context.Context, datos Datos) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sesiones[id] = entrada{datos: datos, expira: s.ahora().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

// Get devuelve los datos si la sesión sigue vigente. Una sesión expirada se
// elimina en el acto y se reporta como inexistente.
func (s *MemoryStore) Get(_ context.Context, id string) (Datos, bool) {
	s.mu.RLock()
	e, ok := s.sesiones[id]
	s.mu.RUnlock()
	if !ok {
		return Datos{}, false
	}
	if s.ahora().After(e.expira) {
		s.mu.Lock()
		delete(s.sesiones, id)
		s.mu.Unlock()
		return Datos{}, false
	}
	return e.datos, true
}

// Destroy elimina la sesión. Borrar una sesión inexistente no es error.
func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sesiones, id)
	s.mu.Unlock()
	return nil
}

// Close detiene el janitor.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) janitor(intervalo time.Duration) {
	if intervalo < time.Minute {
		intervalo = time.Minute
	}
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			ahora := s.ahora()
			s.mu.Lock()
			for id, e := range s.sesiones {
				if ahora.After(e.expira) {
					delete(s.sesiones, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
