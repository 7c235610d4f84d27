package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// FinanceHandler lista lançamentos financeiros (protegido). Os lançamentos de
// serviço são criados pelo fluxo de quitação; aqui é somente leitura.
type FinanceHandler struct {
	finance repository.FinanceMovementRepository
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(finance repository.FinanceMovementRepository) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

func toFinanceMovementDTOs(movements []*entity.FinanceMovement) []dto.FinanceMovementDTO {
	result := make([]dto.FinanceMovementDTO, 0, len(movements))
	for _, m := range movements {
		result = append(result, dto.FinanceMovementDTO{
			ID:                m.ID,
			Title:             m.Title,
			Category:          m.Category,
			Date:              m.Date.Format("2006-01-02"),
			Value:             m.Value,
			Status:            m.Status,
			Type:              m.Type,
			ServiceRealizedID: m.ServiceRealizedID,
			CreatedAt:         m.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// List godoc
// @Summary      Listar lançamentos financeiros
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to      query  string  false  "Data final (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finance/movements [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, use YYYY-MM-DD"})
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, use YYYY-MM-DD"})
		}
		to = &t
	}

	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	movements, err := h.finance.List(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(movements), "movements": toFinanceMovementDTOs(movements)})
}
