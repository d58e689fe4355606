package usecase_test

// Fakes en memoria para los puertos de repositorio. Los tests de casos de uso
// ejercitan reglas de negocio (topes de plan, transiciones, invariantes de
// galería) sin tocar PostgreSQL.

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
	"github.com/jadebro/livecommerce-api/internal/infrastructure/imagenes"
)

// ── comerciantes ─────────────────────────────────────────────────────────────

type fakeComercianteRepo struct {
	porID map[int64]*entity.Comerciante
}

func newFakeComercianteRepo(cs ...*entity.Comerciante) *fakeComercianteRepo {
	r := &fakeComercianteRepo{porID: make(map[int64]*entity.Comerciante)}
	for _, c := range cs {
		r.porID[c.ID] = c
	}
	return r
}

func (r *fakeComercianteRepo) Create(_ context.Context, c *entity.Comerciante) error {
	c.ID = int64(len(r.porID) + 1)
	r.porID[c.ID] = c
	return nil
}

func (r *fakeComercianteRepo) GetByID(_ context.Context, id int64) (*entity.Comerciante, error) {
	return r.porID[id], nil
}

func (r *fakeComercianteRepo) GetByEmailActivo(_ context.Context, email string) (*entity.Comerciante, error) {
	for _, c := range r.porID {
		if c.Email == email && c.Activo {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeComercianteRepo) ExisteSlug(_ context.Context, s string) (bool, error) {
	for _, c := range r.porID {
		if c.Slug == s {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeComercianteRepo) ExisteEmail(_ context.Context, email string) (bool, error) {
	for _, c := range r.porID {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeComercianteRepo) UpdatePlan(_ context.Context, id int64, plan string) (*entity.Comerciante, error) {
	c, ok := r.porID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Plan = plan
	return c, nil
}

// ── productos ────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	porID  map[int64]*entity.Producto
	nextID int64
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{porID: make(map[int64]*entity.Producto)}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	r.nextID++
	p.ID = r.nextID
	cop := *p
	r.porID[p.ID] = &cop
	return nil
}

func (r *fakeProductoRepo) GetByID(_ context.Context, id, comercianteID int64) (*entity.Producto, error) {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return nil, nil
	}
	cop := *p
	return &cop, nil
}

func (r *fakeProductoRepo) ListByComerciante(_ context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error) {
	return r.listar(comercianteID, false, limit, offset), nil
}

func (r *fakeProductoRepo) ListActivos(_ context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error) {
	return r.listar(comercianteID, true, limit, offset), nil
}

func (r *fakeProductoRepo) listar(comercianteID int64, soloActivos bool, limit, offset int) []*entity.Producto {
	var out []*entity.Producto
	for _, p := range r.porID {
		if p.ComercianteID != comercianteID {
			continue
		}
		if soloActivos && !p.Activo {
			continue
		}
		cop := *p
		out = append(out, &cop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *fakeProductoRepo) SetUsaGaleria(_ context.Context, id, comercianteID int64, usa bool) error {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return domain.ErrNotFound
	}
	p.UsaGaleria = usa
	return nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	actual, ok := r.porID[p.ID]
	if !ok || actual.ComercianteID != p.ComercianteID {
		return domain.ErrNotFound
	}
	cop := *p
	r.porID[p.ID] = &cop
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id, comercianteID int64) error {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return domain.ErrNotFound
	}
	delete(r.porID, id)
	return nil
}

func (r *fakeProductoRepo) CountByComerciante(_ context.Context, comercianteID int64) (int, error) {
	n := 0
	for _, p := range r.porID {
		if p.ComercianteID == comercianteID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductoRepo) ReconciliarCategorias(_ context.Context, comercianteID int64) (int64, error) {
	return 0, nil
}

// ── categorías ───────────────────────────────────────────────────────────────

type fakeCategoriaRepo struct {
	porID     map[int64]*entity.Categoria
	nextID    int64
	productos map[int64]int // categoría id → cantidad de productos que la usan
}

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{
		porID:     make(map[int64]*entity.Categoria),
		productos: make(map[int64]int),
	}
}

func (r *fakeCategoriaRepo) Create(_ context.Context, c *entity.Categoria) error {
	for _, e := range r.porID {
		if e.ComercianteID == c.ComercianteID && e.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	c.ID = r.nextID
	cop := *c
	r.porID[c.ID] = &cop
	return nil
}

func (r *fakeCategoriaRepo) GetByID(_ context.Context, id, comercianteID int64) (*entity.Categoria, error) {
	c, ok := r.porID[id]
	if !ok || c.ComercianteID != comercianteID {
		return nil, nil
	}
	cop := *c
	return &cop, nil
}

func (r *fakeCategoriaRepo) ListByComerciante(_ context.Context, comercianteID int64) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.porID {
		if c.ComercianteID == comercianteID {
			cop := *c
			out = append(out, &cop)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoriaRepo) Update(_ context.Context, c *entity.Categoria) error {
	actual, ok := r.porID[c.ID]
	if !ok || actual.ComercianteID != c.ComercianteID {
		return domain.ErrNotFound
	}
	cop := *c
	r.porID[c.ID] = &cop
	return nil
}

func (r *fakeCategoriaRepo) Delete(_ context.Context, id, comercianteID int64) error {
	c, ok := r.porID[id]
	if !ok || c.ComercianteID != comercianteID {
		return domain.ErrNotFound
	}
	delete(r.porID, id)
	return nil
}

func (r *fakeCategoriaRepo) CountProductos(_ context.Context, id, comercianteID int64) (int, error) {
	return r.productos[id], nil
}

// ── imágenes ─────────────────────────────────────────────────────────────────

type fakeImagenRepo struct {
	porID  map[int64]*entity.ProductoImagen
	nextID int64
}

func newFakeImagenRepo() *fakeImagenRepo {
	return &fakeImagenRepo{porID: make(map[int64]*entity.ProductoImagen)}
}

func (r *fakeImagenRepo) Create(_ context.Context, img *entity.ProductoImagen) error {
	r.nextID++
	img.ID = r.nextID
	cop := *img
	r.porID[img.ID] = &cop
	return nil
}

func (r *fakeImagenRepo) GetByID(_ context.Context, id, productoID int64) (*entity.ProductoImagen, error) {
	img, ok := r.porID[id]
	if !ok || img.ProductoID != productoID {
		return nil, nil
	}
	cop := *img
	return &cop, nil
}

func (r *fakeImagenRepo) ListByProducto(_ context.Context, productoID int64) ([]*entity.ProductoImagen, error) {
	var out []*entity.ProductoImagen
	for _, img := range r.porID {
		if img.ProductoID == productoID {
			cop := *img
			out = append(out, &cop)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *fakeImagenRepo) MaxOrden(_ context.Context, productoID int64) (int, error) {
	max := -1
	for _, img := range r.porID {
		if img.ProductoID == productoID && img.Orden > max {
			max = img.Orden
		}
	}
	return max, nil
}

func (r *fakeImagenRepo) ClearPrincipal(_ context.Context, productoID int64) error {
	for _, img := range r.porID {
		if img.ProductoID == productoID {
			img.EsPrincipal = false
		}
	}
	return nil
}

func (r *fakeImagenRepo) SetPrincipal(_ context.Context, id, productoID int64) error {
	img, ok := r.porID[id]
	if !ok || img.ProductoID != productoID {
		return domain.ErrNotFound
	}
	img.EsPrincipal = true
	return nil
}

func (r *fakeImagenRepo) UpdateOrden(_ context.Context, id, productoID int64, orden int) error {
	img, ok := r.porID[id]
	if !ok || img.ProductoID != productoID {
		return domain.ErrNotFound
	}
	img.Orden = orden
	return nil
}

func (r *fakeImagenRepo) Delete(_ context.Context, id, productoID int64) error {
	img, ok := r.porID[id]
	if !ok || img.ProductoID != productoID {
		return domain.ErrNotFound
	}
	delete(r.porID, id)
	return nil
}

// ── pedidos ──────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	porID        map[int64]*entity.Pedido
	detalles     map[int64][]entity.PedidoDetalle
	codigos      map[string]bool
	nextID       int64
	nextDetalle  int64
	colisiones   int // los primeros N Create fallan con ErrDuplicate
	createLlamas int
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{
		porID:    make(map[int64]*entity.Pedido),
		detalles: make(map[int64][]entity.PedidoDetalle),
		codigos:  make(map[string]bool),
	}
}

func (r *fakePedidoRepo) Create(_ context.Context, p *entity.Pedido) error {
	r.createLlamas++
	if r.createLlamas <= r.colisiones || r.codigos[p.Codigo] {
		return domain.ErrDuplicate
	}
	r.nextID++
	p.ID = r.nextID
	r.codigos[p.Codigo] = true
	cop := *p
	cop.Detalles = nil
	r.porID[p.ID] = &cop
	return nil
}

func (r *fakePedidoRepo) CreateDetalle(_ context.Context, d *entity.PedidoDetalle) error {
	if _, ok := r.porID[d.PedidoID]; !ok {
		return fmt.Errorf("pedido %d inexistente", d.PedidoID)
	}
	r.nextDetalle++
	d.ID = r.nextDetalle
	r.detalles[d.PedidoID] = append(r.detalles[d.PedidoID], *d)
	return nil
}

func (r *fakePedidoRepo) GetByID(_ context.Context, id, comercianteID int64) (*entity.Pedido, error) {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return nil, nil
	}
	cop := *p
	cop.Detalles = append([]entity.PedidoDetalle(nil), r.detalles[id]...)
	return &cop, nil
}

func (r *fakePedidoRepo) ListByComerciante(_ context.Context, comercianteID int64, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for id, p := range r.porID {
		if p.ComercianteID != comercianteID {
			continue
		}
		cop := *p
		cop.Detalles = append([]entity.PedidoDetalle(nil), r.detalles[id]...)
		out = append(out, &cop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePedidoRepo) GetEstado(_ context.Context, id, comercianteID int64) (string, error) {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return "", nil
	}
	return p.Estado, nil
}

func (r *fakePedidoRepo) UpdateEstado(_ context.Context, id, comercianteID int64, estado string) error {
	p, ok := r.porID[id]
	if !ok || p.ComercianteID != comercianteID {
		return domain.ErrNotFound
	}
	p.Estado = estado
	return nil
}

// ── tiendas ──────────────────────────────────────────────────────────────────

type fakeTiendaRepo struct {
	porComerciante map[int64]*entity.Tienda
}

func newFakeTiendaRepo(ts ...*entity.Tienda) *fakeTiendaRepo {
	r := &fakeTiendaRepo{porComerciante: make(map[int64]*entity.Tienda)}
	for _, t := range ts {
		r.porComerciante[t.ComercianteID] = t
	}
	return r
}

func (r *fakeTiendaRepo) Create(_ context.Context, t *entity.Tienda) error {
	t.ID = int64(len(r.porComerciante) + 1)
	r.porComerciante[t.ComercianteID] = t
	return nil
}

func (r *fakeTiendaRepo) GetByComerciante(_ context.Context, comercianteID int64) (*entity.Tienda, error) {
	t, ok := r.porComerciante[comercianteID]
	if !ok {
		return nil, nil
	}
	cop := *t
	return &cop, nil
}

func (r *fakeTiendaRepo) ResolverSlug(_ context.Context, slug string) (*repository.TiendaResuelta, error) {
	for _, t := range r.porComerciante {
		if t.Subdominio == slug && t.Activa {
			return &repository.TiendaResuelta{Tienda: *t}, nil
		}
	}
	return nil, nil
}

func (r *fakeTiendaRepo) Update(_ context.Context, t *entity.Tienda) error {
	actual, ok := r.porComerciante[t.ComercianteID]
	if !ok || actual.ID != t.ID {
		return domain.ErrNotFound
	}
	cop := *t
	r.porComerciante[t.ComercianteID] = &cop
	return nil
}

// ── runners transaccionales ──────────────────────────────────────────────────

// Los runners fake ejecutan el callback directamente sobre el repo en memoria:
// la atomicidad no se ejercita acá, solo la lógica del caso de uso.

type fakePedidoRunner struct{ repo *fakePedidoRepo }

func (r *fakePedidoRunner) RunPedido(ctx context.Context, fn func(repository.PedidoRepository) error) error {
	return fn(r.repo)
}

type fakeGaleriaRunner struct{ repo *fakeImagenRepo }

func (r *fakeGaleriaRunner) RunGaleria(ctx context.Context, fn func(repository.ImagenRepository) error) error {
	return fn(r.repo)
}

// ── dashboard ────────────────────────────────────────────────────────────────

type fakeDashboardRepo struct {
	totalPedidos      int64
	ventasTotales     decimal.Decimal
	pedidosPendientes int64
	productosActivos  int64
	topProductos      []repository.TopProducto
	ventasDias        []repository.VentaDia
	errVentas         error
}

func (r *fakeDashboardRepo) TotalPedidos(_ context.Context, _ int64) (int64, error) {
	return r.totalPedidos, nil
}

func (r *fakeDashboardRepo) VentasTotales(_ context.Context, _ int64) (decimal.Decimal, error) {
	return r.ventasTotales, r.errVentas
}

func (r *fakeDashboardRepo) PedidosPendientes(_ context.Context, _ int64) (int64, error) {
	return r.pedidosPendientes, nil
}

func (r *fakeDashboardRepo) ProductosActivos(_ context.Context, _ int64) (int64, error) {
	return r.productosActivos, nil
}

func (r *fakeDashboardRepo) TopProductos(_ context.Context, _ int64, limit int) ([]repository.TopProducto, error) {
	if limit < len(r.topProductos) {
		return r.topProductos[:limit], nil
	}
	return r.topProductos, nil
}

func (r *fakeDashboardRepo) VentasUltimos7Dias(_ context.Context, _ int64) ([]repository.VentaDia, error) {
	return r.ventasDias, nil
}

// ── host de imágenes ─────────────────────────────────────────────────────────

type fakeImagenHost struct {
	subidas  int
	borrados []string
	fallaEn  int // la subida N falla (1-based); 0 = nunca
}

func (h *fakeImagenHost) Upload(_ context.Context, nombre, mimeType string, data []byte) (*imagenes.Subida, error) {
	h.subidas++
	if h.fallaEn > 0 && h.subidas == h.fallaEn {
		return nil, fmt.Errorf("host caído")
	}
	return &imagenes.Subida{
		URL:      fmt.Sprintf("https://img.example/%s-%d", nombre, h.subidas),
		PublicID: fmt.Sprintf("pub-%d", h.subidas),
	}, nil
}

func (h *fakeImagenHost) Delete(_ context.Context, publicID string) error {
	h.borrados = append(h.borrados, publicID)
	return nil
}
