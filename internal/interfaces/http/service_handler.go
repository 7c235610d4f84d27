package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ServiceHandler trata as requisições HTTP do catálogo de serviços (protegido).
type ServiceHandler struct {
	uc *catalog.ServiceUseCase
}

// NewServiceHandler constrói o handler.
func NewServiceHandler(uc *catalog.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

func toCatalogServiceDTO(s *entity.CatalogService) *dto.CatalogServiceDTO {
	if s == nil {
		return nil
	}
	return &dto.CatalogServiceDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Value:       s.Value,
		Cost:        s.Cost,
		Active:      s.Active,
	}
}

// Create godoc
// @Summary      Criar serviço do catálogo
// @Tags         catalog-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCatalogServiceRequest  true  "Dados do serviço"
// @Success      201   {object}  dto.CatalogServiceDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog-services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCatalogServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCatalogServiceDTO(out))
}

// Update godoc
// @Summary      Atualizar serviço do catálogo
// @Tags         catalog-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do serviço"
// @Param        body  body  dto.SaveCatalogServiceRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.CatalogServiceDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog-services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.SaveCatalogServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toCatalogServiceDTO(out))
}

// GetByID godoc
// @Summary      Obter serviço do catálogo por ID
// @Tags         catalog-services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do serviço"
// @Success      200  {object}  dto.CatalogServiceDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog-services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toCatalogServiceDTO(out))
}

// List godoc
// @Summary      Listar serviços do catálogo
// @Tags         catalog-services
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/catalog-services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	services := make([]*dto.CatalogServiceDTO, 0, len(out))
	for _, s := range out {
		services = append(services, toCatalogServiceDTO(s))
	}
	return c.JSON(fiber.Map{"success": true, "total": len(services), "services": services})
}

// Deactivate godoc
// @Summary      Desativar serviço do catálogo
// @Tags         catalog-services
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog-services/{id} [delete]
func (h *ServiceHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Deactivate(c.Context(), id); err != nil {
		return failWith(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "serviço desativado"})
}
