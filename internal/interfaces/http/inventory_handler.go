package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
)

// InventoryHandler trata as requisições HTTP do razão de estoque (protegido).
type InventoryHandler struct {
	ledger *inventory.StockLedger
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(ledger *inventory.StockLedger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

func toOutcomeDTOs(outcomes []inventory.MovementOutcome) []dto.MovementOutcomeDTO {
	result := make([]dto.MovementOutcomeDTO, 0, len(outcomes))
	for _, o := range outcomes {
		result = append(result, dto.MovementOutcomeDTO{
			ProductID:     o.ProductID,
			ProductName:   o.ProductName,
			PreviousStock: o.PreviousStock,
			Quantity:      o.Quantity,
			CurrentStock:  o.CurrentStock,
		})
	}
	return result
}

// ApplyMovements godoc
// @Summary      Aplicar lote de movimentações de estoque
// @Description  Aplica um lote tudo-ou-nada de entradas ou saídas. Itens com
//	quantidade <= 0 são ignorados e quantidades do mesmo produto são somadas.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementsRequest  true  "items, direction (entrada|saida), origin, reference_id"
// @Success      200   {object}  dto.ApplyMovementsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) ApplyMovements(c *fiber.Ctx) error {
	var in dto.ApplyMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	items := make([]inventory.MovementInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.MovementInput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}

	outcomes, err := h.ledger.ApplyMovements(c.Context(), inventory.ApplyMovementsInput{
		Items:       items,
		Direction:   in.Direction,
		Origin:      in.Origin,
		ReferenceID: in.ReferenceID,
		Actor:       GetUserID(c),
	})
	if err != nil {
		return failWith(c, err)
	}

	message := "nenhum item para movimentar"
	if len(outcomes) > 0 {
		message = fmt.Sprintf("%d produto(s) movimentado(s)", len(outcomes))
	}
	return c.JSON(dto.ApplyMovementsResponse{
		Response: dto.Response{Success: true, Message: message},
		Outcomes: toOutcomeDTOs(outcomes),
	})
}
