package service

import (
	"sort"
	"strings"

	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
)

// FiltrarPedidos applies the list-view search, tag filters and optional date
// sort to an in-memory collection. Pure: no I/O, input slice untouched, the
// result is always a subset (and the identity when nothing is active).
func FiltrarPedidos(pedidos []model.Pedido, f dto.FiltrosPedido) []model.Pedido {
	resultado := make([]model.Pedido, len(pedidos))
	copy(resultado, pedidos)

	if q := strings.ToLower(strings.TrimSpace(f.Busqueda)); q != "" {
		resultado = filtrar(resultado, func(p model.Pedido) bool {
			return strings.Contains(strings.ToLower(p.Nombre), q) ||
				strings.Contains(strings.ToLower(p.Alias), q) ||
				strings.Contains(strings.ToLower(p.NumeroPedido), q) ||
				strings.Contains(strings.ToLower(p.FrasePersonalizada), q)
		})
	}

	// Estado de pago: OR within the group, no toggles = no constraint.
	estados := map[string]bool{}
	if f.AbonoPendiente {
		estados[model.EstadoAbonoPendiente] = true
	}
	if f.NoPagado {
		estados[model.EstadoNoPagado] = true
	}
	if f.Pagado {
		estados[model.EstadoPagado] = true
	}
	if len(estados) > 0 {
		resultado = filtrar(resultado, func(p model.Pedido) bool { return estados[p.Estado] })
	}

	// Red social: same group semantics.
	redes := map[string]bool{}
	if f.Instagram {
		redes["instagram"] = true
	}
	if f.Whatsapp {
		redes["whatsapp"] = true
	}
	if f.Facebook {
		redes["facebook"] = true
	}
	if f.Tiktok {
		redes["tiktok"] = true
	}
	if len(redes) > 0 {
		resultado = filtrar(resultado, func(p model.Pedido) bool { return redes[p.RedSocial] })
	}

	// Elaboración / entrega: paired toggles. Exactly one active filters to
	// that value; both active degenerates to no constraint, same as none.
	if f.Elaborado != f.PendienteElaborar {
		quiero := f.Elaborado
		resultado = filtrar(resultado, func(p model.Pedido) bool { return p.Elaborado == quiero })
	}
	if f.Entregado != f.PendienteEntregar {
		quiero := f.Entregado
		resultado = filtrar(resultado, func(p model.Pedido) bool { return p.Entregado == quiero })
	}

	// Without the toggle the order the store returned is preserved.
	if f.PorFecha {
		sort.SliceStable(resultado, func(i, j int) bool {
			return resultado[i].FechaEntrega < resultado[j].FechaEntrega
		})
	}

	return resultado
}

func filtrar(pedidos []model.Pedido, pred func(model.Pedido) bool) []model.Pedido {
	out := pedidos[:0]
	for _, p := range pedidos {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
