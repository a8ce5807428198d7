package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// EntregaService builds the per-day delivery plan: grouping, manual
// reordering and the printable route sheet.
type EntregaService interface {
	PlanDelDia(ctx context.Context, fecha string) (*dto.PlanDiaResponse, error)
	GuardarOrden(ctx context.Context, fecha string, ids []string) error
	// Mover moves one pedido one position up or down within its day and
	// persists the resulting ordering. Out-of-bounds moves are no-ops.
	Mover(ctx context.Context, fecha, pedidoID, direccion string) (*dto.PlanDiaResponse, error)
	HojaDeRuta(ctx context.Context, fecha string) ([]byte, error)
}

type entregaService struct {
	pedidos  storage.PedidoStore
	entregas storage.EntregaStore
}

func NewEntregaService(pedidos storage.PedidoStore, entregas storage.EntregaStore) EntregaService {
	return &entregaService{pedidos: pedidos, entregas: entregas}
}

// OrdenarEntregasDia arranges one day's pedidos: the stored manual sequence
// wins; pedidos the sequence does not mention (created after the last
// reorder) follow it sorted by delivery time; with no sequence at all the
// whole day sorts by delivery time. Pure.
func OrdenarEntregasDia(delDia []model.Pedido, orden []string) []model.Pedido {
	resto := make([]model.Pedido, len(delDia))
	copy(resto, delDia)
	sort.SliceStable(resto, func(i, j int) bool {
		return resto[i].HoraEntrega < resto[j].HoraEntrega
	})
	if len(orden) == 0 {
		return resto
	}

	porID := make(map[string]int, len(resto))
	for i, p := range resto {
		porID[p.ID] = i
	}
	out := make([]model.Pedido, 0, len(resto))
	usados := make(map[string]bool, len(orden))
	for _, id := range orden {
		if i, ok := porID[id]; ok && !usados[id] {
			out = append(out, resto[i])
			usados[id] = true
		}
	}
	for _, p := range resto {
		if !usados[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (s *entregaService) PlanDelDia(ctx context.Context, fecha string) (*dto.PlanDiaResponse, error) {
	pedidos, err := s.pedidos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	delDia := make([]model.Pedido, 0)
	for _, p := range pedidos {
		if p.FechaEntregaDia() == fecha {
			delDia = append(delDia, p)
		}
	}

	orden, err := s.entregas.ObtenerOrden(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return &dto.PlanDiaResponse{Fecha: fecha, Pedidos: OrdenarEntregasDia(delDia, orden)}, nil
}

func (s *entregaService) GuardarOrden(ctx context.Context, fecha string, ids []string) error {
	return s.entregas.GuardarOrden(ctx, fecha, ids)
}

func (s *entregaService) Mover(ctx context.Context, fecha, pedidoID, direccion string) (*dto.PlanDiaResponse, error) {
	plan, err := s.PlanDelDia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range plan.Pedidos {
		if p.ID == pedidoID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errors.New("el pedido no pertenece a ese día de entrega")
	}

	destino := idx - 1
	if direccion == "bajar" {
		destino = idx + 1
	}
	// Ya está primero/último: no hay nada que mover.
	if destino < 0 || destino >= len(plan.Pedidos) {
		return plan, nil
	}
	plan.Pedidos[idx], plan.Pedidos[destino] = plan.Pedidos[destino], plan.Pedidos[idx]

	ids := make([]string, len(plan.Pedidos))
	for i, p := range plan.Pedidos {
		ids[i] = p.ID
	}
	if err := s.entregas.GuardarOrden(ctx, fecha, ids); err != nil {
		return nil, err
	}
	return plan, nil
}

// HojaDeRuta renders the day's deliveries as a printable A4 sheet, in plan
// order, with the fields the driver needs on the street.
func (s *entregaService) HojaDeRuta(ctx context.Context, fecha string) ([]byte, error) {
	plan, err := s.PlanDelDia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Ramos Buchones — Hoja de Ruta", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Entregas del %s — %d pedidos", fecha, len(plan.Pedidos)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colNum := contentW * 0.10
	colHora := contentW * 0.10
	colCliente := contentW * 0.28
	colDir := contentW * 0.36
	colPend := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colNum, 7, "Pedido", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colHora, 7, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCliente, 7, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDir, 7, "Dirección / Retiro", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPend, 7, "Pendiente", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range plan.Pedidos {
		destino := p.Direccion
		if p.TipoEntrega == model.EntregaRetiro {
			destino = "Retiro en tienda"
		}
		cliente := p.Nombre
		if p.Telefono != "" {
			cliente += "  " + p.Telefono
		}
		pdf.CellFormat(colNum, 6, p.NumeroPedido, "", 0, "L", false, 0, "")
		pdf.CellFormat(colHora, 6, p.HoraEntrega, "", 0, "L", false, 0, "")
		pdf.CellFormat(colCliente, 6, cliente, "", 0, "L", false, 0, "")
		pdf.CellFormat(colDir, 6, destino, "", 0, "L", false, 0, "")
		pendiente := ""
		if p.MontoPendiente.IsPositive() {
			pendiente = "$" + p.MontoPendiente.StringFixed(0)
		}
		pdf.CellFormat(colPend, 6, pendiente, "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
