package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) (*MemoryStore, *time.Time) {
	ahora := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	s := &MemoryStore{
		sesiones: make(map[string]entrada),
		ttl:      ttl,
		ahora:    func() time.Time { return ahora },
		done:     make(chan struct{}),
	}
	// sin janitor: los tests controlan el reloj a mano
	return s, &ahora
}

func TestMemoryStore_CreateGet(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	ctx := context.Background()

	datos := Datos{ComercianteID: 7, Email: "ana@tienda.com", Nombre: "Ana", Slug: "tienda-ana"}
	id, err := s.Create(ctx, datos)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, ok := s.Get(ctx, id)
	require.True(t, ok)
	assert.Equal(t, datos, got)
}

func TestMemoryStore_GetInexistente(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	_, ok := s.Get(context.Background(), "no-existe")
	assert.False(t, ok)
}

func TestMemoryStore_ExpiraEnLectura(t *testing.T) {
	s, ahora := newTestStore(30 * time.Minute)
	ctx := context.Background()

	id, err := s.Create(ctx, Datos{ComercianteID: 1})
	require.NoError(t, err)

	*ahora = ahora.Add(31 * time.Minute)

	_, ok := s.Get(ctx, id)
	assert.False(t, ok, "la sesión vencida debe reportarse como inexistente")

	// la entrada vencida se eliminó del mapa en el Get
	s.mu.RLock()
	_, sigue := s.sesiones[id]
	s.mu.RUnlock()
	assert.False(t, sigue)
}

func TestMemoryStore_Destroy(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, Datos{ComercianteID: 2})
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, id))
	_, ok := s.Get(ctx, id)
	assert.False(t, ok)

	// destruir dos veces no es error
	assert.NoError(t, s.Destroy(ctx, id))
}

func TestMemoryStore_IDsOpacosDistintos(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	ctx := context.Background()

	id1, _ := s.Create(ctx, Datos{ComercianteID: 1})
	id2, _ := s.Create(ctx, Datos{ComercianteID: 1})
	assert.NotEqual(t, id1, id2)
}
