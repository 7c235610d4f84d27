package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// FulfillmentHandler trata as requisições HTTP de serviços realizados (protegido).
type FulfillmentHandler struct {
	uc       *fulfillment.UseCase
	receipts *fulfillment.ReceiptUseCase
}

// NewFulfillmentHandler constrói o handler.
func NewFulfillmentHandler(uc *fulfillment.UseCase, receipts *fulfillment.ReceiptUseCase) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc, receipts: receipts}
}

func toFulfillmentDTO(svc *entity.ServiceRealized) *dto.FulfillmentDTO {
	if svc == nil {
		return nil
	}
	return &dto.FulfillmentDTO{
		ID:            svc.ID,
		ClientID:      svc.ClientID,
		ClientName:    svc.ClientName,
		ServiceID:     svc.ServiceID,
		Description:   svc.Description,
		ServiceDate:   svc.ServiceDate,
		Status:        svc.Status,
		ServiceValue:  svc.ServiceValue,
		ServiceCost:   svc.ServiceCost,
		ProductsValue: svc.ProductsValue,
		ProductsCost:  svc.ProductsCost,
		TotalValue:    svc.TotalValue,
		TotalCost:     svc.TotalCost,
		Notes:         svc.Notes,
	}
}

func toFulfillmentItemDTOs(items []*entity.ServiceRealizedItem) []dto.FulfillmentItemDTO {
	result := make([]dto.FulfillmentItemDTO, 0, len(items))
	for _, it := range items {
		result = append(result, dto.FulfillmentItemDTO{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			UnitCost:   it.UnitCost,
			TotalPrice: it.TotalPrice,
			TotalCost:  it.TotalCost,
		})
	}
	return result
}

func toFulfillmentResponse(message string, res *fulfillment.Result) dto.FulfillmentResponse {
	return dto.FulfillmentResponse{
		Response:      dto.Response{Success: true, Message: message},
		Record:        toFulfillmentDTO(res.Record),
		Items:         toFulfillmentItemDTOs(res.Items),
		AlreadyBilled: res.AlreadyBilled,
	}
}

// Create godoc
// @Summary      Criar serviço realizado
// @Description  Insere o registro e os itens, baixa o estoque consumido e, se o
//	status for completed, lança o financeiro. Tudo em uma transação.
// @Tags         services-realized
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveFulfillmentRequest  true  "Dados do serviço"
// @Success      201   {object}  dto.FulfillmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/services-realized [post]
func (h *FulfillmentHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveFulfillmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	res, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFulfillmentResponse("serviço registrado", res))
}

// Update godoc
// @Summary      Editar serviço realizado
// @Description  Substitui os dados e os itens; o estoque é reconciliado pela
//	diferença entre as quantidades antigas e novas de cada produto.
// @Tags         services-realized
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do serviço"
// @Param        body  body  dto.SaveFulfillmentRequest  true  "Dados do serviço"
// @Success      200   {object}  dto.FulfillmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/services-realized/{id} [put]
func (h *FulfillmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.SaveFulfillmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	res, err := h.uc.Update(c.Context(), id, in, GetUserID(c))
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toFulfillmentResponse("serviço atualizado", res))
}

// Settle godoc
// @Summary      Quitar serviço realizado
// @Description  Marca como completed e garante exatamente um lançamento
//	financeiro vinculado. Chamadas repetidas devolvem already_billed.
// @Tags         services-realized
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  dto.FulfillmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services-realized/{id}/settle [post]
func (h *FulfillmentHandler) Settle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	res, err := h.uc.Settle(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	message := "serviço quitado"
	if res.AlreadyBilled {
		message = "serviço já estava quitado"
	}
	return c.JSON(toFulfillmentResponse(message, res))
}

// Delete godoc
// @Summary      Remover serviço realizado
// @Description  Remove itens, lançamento financeiro e o registro. O estoque
//	consumido não é devolvido.
// @Tags         services-realized
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services-realized/{id} [delete]
func (h *FulfillmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return failWith(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "serviço removido"})
}

// GetByID godoc
// @Summary      Obter serviço realizado
// @Tags         services-realized
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  dto.FulfillmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services-realized/{id} [get]
func (h *FulfillmentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	res, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(toFulfillmentResponse("", res))
}

// List godoc
// @Summary      Listar serviços realizados
// @Tags         services-realized
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/services-realized [get]
func (h *FulfillmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	records, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return failWith(c, err)
	}
	out := make([]*dto.FulfillmentDTO, 0, len(records))
	for _, svc := range records {
		out = append(out, toFulfillmentDTO(svc))
	}
	return c.JSON(fiber.Map{"success": true, "total": len(out), "records": out})
}

// Receipt godoc
// @Summary      Baixar comprovante (ordem de serviço) em PDF
// @Tags         services-realized
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services-realized/{id}/receipt [get]
func (h *FulfillmentHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	pdfBytes, filename, err := h.receipts.DownloadReceipt(c.Context(), id)
	if err != nil {
		return failWith(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
