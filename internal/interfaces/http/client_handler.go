package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ClientHandler trata as requisições HTTP de clientes (protegido).
type ClientHandler struct {
	uc *catalog.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *catalog.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func toClientDTO(cl *entity.Client) *dto.ClientDTO {
	if cl == nil {
		return nil
	}
	return &dto.ClientDTO{
		ID:       cl.ID,
		Name:     cl.Name,
		Phone:    cl.Phone,
		Email:    cl.Email,
		Document: cl.Document,
		Address:  cl.Address,
		Notes:    cl.Notes,
	}
}

// Create godoc
// @Summary      Criar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveClientRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClientDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toClientDTO(out))
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do cliente"
// @Param        body  body  dto.SaveClientRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ClientDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.SaveClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toClientDTO(out))
}

// GetByID godoc
// @Summary      Obter cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  dto.ClientDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toClientDTO(out))
}

// List godoc
// @Summary      Listar clientes
// @Description  search filtra por nome, ignorando acentos e caixa.
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nome"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	clients := make([]*dto.ClientDTO, 0, len(out))
	for _, cl := range out {
		clients = append(clients, toClientDTO(cl))
	}
	return c.JSON(fiber.Map{"success": true, "total": len(clients), "clients": clients})
}

// Delete godoc
// @Summary      Remover cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do cliente"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return failWith(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "cliente removido"})
}
