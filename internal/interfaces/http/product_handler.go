package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ProductHandler trata as requisições HTTP de produtos (protegido).
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	if p == nil {
		return nil
	}
	return &dto.ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Stock:     p.Stock,
		Cost:      p.Cost,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func toStockMovementDTOs(movements []*entity.StockMovement) []dto.StockMovementDTO {
	result := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		result = append(result, dto.StockMovementDTO{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Direction:     m.Direction,
			Quantity:      m.Quantity,
			PreviousStock: m.PreviousStock,
			CurrentStock:  m.CurrentStock,
			Description:   m.Description,
			Origin:        m.Origin,
			ReferenceID:   m.ReferenceID,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// Create godoc
// @Summary      Criar produto
// @Description  Cria o produto com saldo zero; initial_stock > 0 entra no razão
//	como entrada de ajuste_sistema.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductDTO(out))
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toProductDTO(out))
}

// List godoc
// @Summary      Listar produtos
// @Description  search filtra por nome, ignorando acentos e caixa.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nome"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	products := make([]*dto.ProductDTO, 0, len(out))
	for _, p := range out {
		products = append(products, toProductDTO(p))
	}
	return c.JSON(fiber.Map{"success": true, "total": len(products), "products": products})
}

// Update godoc
// @Summary      Atualizar produto
// @Description  Não altera o saldo; estoque só muda pelo razão.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ProductDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toProductDTO(out))
}

// Deactivate godoc
// @Summary      Desativar produto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Deactivate(c.Context(), id); err != nil {
		return failWith(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "produto desativado"})
}

// AdjustStock godoc
// @Summary      Ajuste manual de estoque
// @Description  Correção pontual de saldo, registrada no razão com origem manual.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AdjustStockRequest  true  "direction (entrada|saida), quantity"
// @Success      200   {object}  dto.ApplyMovementsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust-stock [post]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	outcomes, err := h.uc.AdjustStock(c.Context(), id, in, GetUserID(c))
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(dto.ApplyMovementsResponse{
		Response: dto.Response{Success: true, Message: "estoque ajustado"},
		Outcomes: toOutcomeDTOs(outcomes),
	})
}

// Movements godoc
// @Summary      Histórico de movimentações do produto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	movements, err := h.uc.Movements(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(movements), "movements": toStockMovementDTOs(movements)})
}
