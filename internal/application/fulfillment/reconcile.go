package fulfillment

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// groupQuantities soma as quantidades dos itens por produto.
func groupQuantities(items []*entity.ServiceRealizedItem) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		grouped[it.ProductID] = grouped[it.ProductID].Add(it.Quantity)
	}
	return grouped
}

// reconcile calcula o ajuste mínimo de estoque entre o conjunto de itens
// anterior e o novo. Para cada produto da união dos dois conjuntos:
// delta > 0 vira saída adicional, delta < 0 vira devolução (entrada) e
// delta == 0 não gera movimento, para não poluir a trilha de auditoria.
func reconcile(before, after map[string]decimal.Decimal) (outbound, inbound []inventory.MovementInput) {
	union := make(map[string]struct{}, len(before)+len(after))
	for id := range before {
		union[id] = struct{}{}
	}
	for id := range after {
		union[id] = struct{}{}
	}

	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		delta := after[id].Sub(before[id])
		switch {
		case delta.IsPositive():
			outbound = append(outbound, inventory.MovementInput{
				ProductID:   id,
				Quantity:    delta,
				Description: "Ajuste de edição do serviço",
			})
		case delta.IsNegative():
			inbound = append(inbound, inventory.MovementInput{
				ProductID:   id,
				Quantity:    delta.Neg(),
				Description: "Devolução por edição do serviço",
			})
		}
	}
	return outbound, inbound
}
