package service

import (
	"context"
	"errors"

	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

var ErrPedidoNoEncontrado = errors.New("pedido no encontrado")

// PedidoService defines the business operations over pedidos.
type PedidoService interface {
	Crear(ctx context.Context, req dto.PedidoRequest) (*model.Pedido, error)
	Listar(ctx context.Context, f dto.FiltrosPedido) ([]model.Pedido, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Pedido, error)
	Actualizar(ctx context.Context, id string, req dto.PedidoRequest) (*model.Pedido, error)
	Eliminar(ctx context.Context, id string) error
	ToggleElaborado(ctx context.Context, id string) (*model.Pedido, error)
	ToggleEntregado(ctx context.Context, id string) (*model.Pedido, error)
}

type pedidoService struct {
	store storage.PedidoStore
}

func NewPedidoService(store storage.PedidoStore) PedidoService {
	return &pedidoService{store: store}
}

// armarPedido maps a request onto a pedido, recomputing the derived fields.
func armarPedido(req dto.PedidoRequest, p *model.Pedido) {
	p.Nombre = req.Nombre
	p.Alias = req.Alias
	p.Telefono = req.Telefono
	p.RedSocial = req.RedSocial
	p.FechaReserva = req.FechaReserva
	p.FechaEntrega = req.FechaEntrega
	p.HoraEntrega = req.HoraEntrega
	p.TipoEntrega = req.TipoEntrega
	p.Detalles = req.Detalles
	p.FrasePersonalizada = req.FrasePersonalizada
	p.MedioPago = req.MedioPago
	p.Comprobantes = req.Comprobantes
	p.ImagenesAdicionales = req.ImagenesAdicionales

	// La dirección solo aplica a envíos
	if req.TipoEntrega == model.EntregaEnvio {
		p.Direccion = req.Direccion
	} else {
		p.Direccion = ""
	}
	if p.HoraEntrega == "" {
		p.HoraEntrega = "12:00"
	}

	p.Productos = make([]model.ProductoPedido, 0, len(req.Productos))
	for _, item := range req.Productos {
		p.Productos = append(p.Productos, model.ProductoPedido{
			ProductoID: item.ProductoID,
			Nombre:     item.Nombre,
			Precio:     item.Precio,
			Cantidad:   item.Cantidad,
		})
	}

	p.MontoTotal = req.MontoTotal
	p.MontoAbonado = req.MontoAbonado
	p.RecalcularEstado()
}

func validarEntrega(req dto.PedidoRequest) error {
	if req.TipoEntrega == model.EntregaEnvio && req.Direccion == "" {
		return errors.New("la dirección es obligatoria para envío")
	}
	return nil
}

func (s *pedidoService) Crear(ctx context.Context, req dto.PedidoRequest) (*model.Pedido, error) {
	if err := validarEntrega(req); err != nil {
		return nil, err
	}

	numero, err := s.store.SiguienteNumero(ctx)
	if err != nil {
		return nil, err
	}

	p := &model.Pedido{NumeroPedido: numero}
	armarPedido(req, p)
	return s.store.Guardar(ctx, p)
}

func (s *pedidoService) Listar(ctx context.Context, f dto.FiltrosPedido) ([]model.Pedido, error) {
	pedidos, err := s.store.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return FiltrarPedidos(pedidos, f), nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id string) (*model.Pedido, error) {
	pedidos, err := s.store.Listar(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pedidos {
		if pedidos[i].ID == id {
			return &pedidos[i], nil
		}
	}
	return nil, ErrPedidoNoEncontrado
}

// Actualizar is a full edit-and-resave: identity, numero, creation date and
// the fulfillment flags survive; everything else comes from the form.
func (s *pedidoService) Actualizar(ctx context.Context, id string, req dto.PedidoRequest) (*model.Pedido, error) {
	if err := validarEntrega(req); err != nil {
		return nil, err
	}
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	armarPedido(req, p)
	if err := s.store.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id string) error {
	return s.store.Eliminar(ctx, id)
}

func (s *pedidoService) ToggleElaborado(ctx context.Context, id string) (*model.Pedido, error) {
	return s.toggle(ctx, id, func(p *model.Pedido) { p.Elaborado = !p.Elaborado })
}

func (s *pedidoService) ToggleEntregado(ctx context.Context, id string) (*model.Pedido, error) {
	return s.toggle(ctx, id, func(p *model.Pedido) { p.Entregado = !p.Entregado })
}

// toggle flips exactly one fulfillment flag and leaves every other field,
// estado included, as stored.
func (s *pedidoService) toggle(ctx context.Context, id string, flip func(*model.Pedido)) (*model.Pedido, error) {
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	flip(p)
	if err := s.store.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
