package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// UseCase orquestra o ciclo de vida de um serviço realizado: criação, edição
// com reconciliação de estoque, quitação idempotente e remoção. Cada operação
// roda inteira em uma transação; o consumo de estoque passa pelo razão e o
// faturamento pelo Biller, ambos participando da mesma transação.
type UseCase struct {
	txRunner TxRunner
	ledger   Ledger
	biller   Biller
	services repository.ServiceRealizedRepository
	clients  repository.ClientRepository
	catalog  repository.CatalogServiceRepository
}

// NewUseCase constrói o caso de uso. services/clients/catalog são repositórios
// atados ao pool, usados só em leituras fora de transação.
func NewUseCase(txRunner TxRunner, ledger Ledger, biller Biller, services repository.ServiceRealizedRepository, clients repository.ClientRepository, catalog repository.CatalogServiceRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ledger: ledger, biller: biller, services: services, clients: clients, catalog: catalog}
}

// Result retorno das operações de escrita.
type Result struct {
	Record        *entity.ServiceRealized
	Items         []*entity.ServiceRealizedItem
	AlreadyBilled bool
}

func validStatus(status string) bool {
	switch status {
	case entity.StatusScheduled, entity.StatusInProgress, entity.StatusCompleted:
		return true
	}
	return false
}

// resolveInput valida o payload e resolve as referências de cliente e catálogo
// (somente leitura, fora da transação).
func (uc *UseCase) resolveInput(ctx context.Context, in *dto.SaveFulfillmentRequest) error {
	if in.Status == "" {
		in.Status = entity.StatusScheduled
	}
	if !validStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if in.ServiceDate.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.ServiceValue.IsNegative() || in.ServiceCost.IsNegative() {
		return domain.ErrInvalidInput
	}

	if in.ClientID != nil && *in.ClientID != "" {
		client, err := uc.clients.GetByID(ctx, *in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		if in.ClientName == "" {
			in.ClientName = client.Name
		}
	}
	if in.ClientName == "" {
		return domain.ErrInvalidInput
	}

	if in.ServiceID != nil && *in.ServiceID != "" {
		svc, err := uc.catalog.GetByID(ctx, *in.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// buildItems monta os itens com totais calculados (quantidade × preço e
// quantidade × custo). Itens com quantidade não positiva são descartados.
func buildItems(serviceRealizedID string, in []dto.FulfillmentItemRequest) ([]*entity.ServiceRealizedItem, error) {
	items := make([]*entity.ServiceRealizedItem, 0, len(in))
	for _, it := range in {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		if it.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if it.UnitPrice.IsNegative() || it.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, &entity.ServiceRealizedItem{
			ID:                uuid.New().String(),
			ServiceRealizedID: serviceRealizedID,
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			UnitPrice:         it.UnitPrice,
			UnitCost:          it.UnitCost,
			TotalPrice:        it.Quantity.Mul(it.UnitPrice),
			TotalCost:         it.Quantity.Mul(it.UnitCost),
		})
	}
	return items, nil
}

// applyTotals soma os itens em produtos-valor/custo e fecha os totais gerais.
func applyTotals(svc *entity.ServiceRealized, items []*entity.ServiceRealizedItem) {
	productsValue := decimal.Zero
	productsCost := decimal.Zero
	for _, it := range items {
		productsValue = productsValue.Add(it.TotalPrice)
		productsCost = productsCost.Add(it.TotalCost)
	}
	svc.ProductsValue = productsValue
	svc.ProductsCost = productsCost
	svc.TotalValue = svc.ServiceValue.Add(productsValue)
	svc.TotalCost = svc.ServiceCost.Add(productsCost)
}

func ledgerItems(items []*entity.ServiceRealizedItem) []inventory.MovementInput {
	out := make([]inventory.MovementInput, 0, len(items))
	for _, it := range items {
		out = append(out, inventory.MovementInput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Description: "Consumo em serviço realizado",
		})
	}
	return out
}

// Create insere o registro e seus itens, baixa o estoque consumido via razão
// (origem "servico", referência ao novo id) e, se o status já nasce concluído,
// gera o lançamento financeiro. Tudo na mesma transação.
func (uc *UseCase) Create(ctx context.Context, in dto.SaveFulfillmentRequest, actor string) (*Result, error) {
	if err := uc.resolveInput(ctx, &in); err != nil {
		return nil, err
	}

	now := time.Now()
	svc := &entity.ServiceRealized{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		ClientName:   in.ClientName,
		ServiceID:    in.ServiceID,
		Description:  in.Description,
		ServiceDate:  in.ServiceDate,
		Status:       in.Status,
		ServiceValue: in.ServiceValue,
		ServiceCost:  in.ServiceCost,
		Notes:        in.Notes,
		CreatedBy:    actor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items, err := buildItems(svc.ID, in.Items)
	if err != nil {
		return nil, err
	}
	applyTotals(svc, items)

	result := &Result{Record: svc, Items: items}
	err = uc.txRunner.RunFulfillment(ctx, func(r Repos) error {
		if err := r.Services.Create(ctx, svc); err != nil {
			return err
		}
		for _, it := range items {
			if err := r.Services.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		if len(items) > 0 {
			_, err := uc.ledger.ApplyMovementsInTx(ctx, r.Inventory(), inventory.ApplyMovementsInput{
				Items:       ledgerItems(items),
				Direction:   entity.DirectionOut,
				Origin:      entity.OriginService,
				ReferenceID: svc.ID,
				Actor:       actor,
			})
			if err != nil {
				return err
			}
		}
		if svc.Status == entity.StatusCompleted {
			already, err := uc.biller.EnsureBilled(ctx, r.Finance, svc)
			if err != nil {
				return err
			}
			result.AlreadyBilled = already
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update edita o registro reconciliando o estoque: carrega as quantidades do
// conjunto de itens anterior, substitui registro e itens por inteiro e aplica
// apenas os deltas por produto — saídas adicionais e devoluções em dois lotes
// do razão, na mesma transação e com a mesma referência. Quantidade inalterada
// não gera movimento. Falha em qualquer ponto desfaz a edição inteira.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.SaveFulfillmentRequest, actor string) (*Result, error) {
	if err := uc.resolveInput(ctx, &in); err != nil {
		return nil, err
	}

	var result *Result
	err := uc.txRunner.RunFulfillment(ctx, func(r Repos) error {
		svc, err := r.Services.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if svc == nil {
			return domain.ErrNotFound
		}

		previousItems, err := r.Services.ListItems(ctx, id)
		if err != nil {
			return err
		}
		before := groupQuantities(previousItems)

		items, err := buildItems(id, in.Items)
		if err != nil {
			return err
		}

		svc.ClientID = in.ClientID
		svc.ClientName = in.ClientName
		svc.ServiceID = in.ServiceID
		svc.Description = in.Description
		svc.ServiceDate = in.ServiceDate
		svc.Status = in.Status
		svc.ServiceValue = in.ServiceValue
		svc.ServiceCost = in.ServiceCost
		svc.Notes = in.Notes
		svc.UpdatedAt = time.Now()
		applyTotals(svc, items)

		if err := r.Services.Update(ctx, svc); err != nil {
			return err
		}
		if err := r.Services.DeleteItems(ctx, id); err != nil {
			return err
		}
		for _, it := range items {
			if err := r.Services.CreateItem(ctx, it); err != nil {
				return err
			}
		}

		after := groupQuantities(items)
		outbound, inbound := reconcile(before, after)
		if len(outbound) > 0 {
			if _, err := uc.ledger.ApplyMovementsInTx(ctx, r.Inventory(), inventory.ApplyMovementsInput{
				Items:       outbound,
				Direction:   entity.DirectionOut,
				Origin:      entity.OriginService,
				ReferenceID: id,
				Actor:       actor,
			}); err != nil {
				return err
			}
		}
		if len(inbound) > 0 {
			if _, err := uc.ledger.ApplyMovementsInTx(ctx, r.Inventory(), inventory.ApplyMovementsInput{
				Items:       inbound,
				Direction:   entity.DirectionIn,
				Origin:      entity.OriginService,
				ReferenceID: id,
				Actor:       actor,
			}); err != nil {
				return err
			}
		}

		result = &Result{Record: svc, Items: items}
		if svc.Status == entity.StatusCompleted {
			already, err := uc.biller.EnsureBilled(ctx, r.Finance, svc)
			if err != nil {
				return err
			}
			result.AlreadyBilled = already
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Settle conclui um serviço independente de edição de conteúdo: bloqueia a
// linha, garante o lançamento financeiro (uma única vez) e grava o status
// concluído. Chamadas repetidas retornam AlreadyBilled=true sem novo lançamento.
func (uc *UseCase) Settle(ctx context.Context, id string) (*Result, error) {
	var result *Result
	err := uc.txRunner.RunFulfillment(ctx, func(r Repos) error {
		svc, err := r.Services.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if svc == nil {
			return domain.ErrNotFound
		}

		already, err := uc.biller.EnsureBilled(ctx, r.Finance, svc)
		if err != nil {
			return err
		}
		if svc.Status != entity.StatusCompleted {
			svc.Status = entity.StatusCompleted
			svc.UpdatedAt = time.Now()
			if err := r.Services.UpdateStatus(ctx, id, entity.StatusCompleted); err != nil {
				return err
			}
		}
		result = &Result{Record: svc, AlreadyBilled: already}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete remove itens, o lançamento financeiro vinculado e o registro, em uma
// transação. O estoque consumido não é devolvido: o consumo registrado no
// razão é definitivo mesmo com a remoção do serviço.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunFulfillment(ctx, func(r Repos) error {
		svc, err := r.Services.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if svc == nil {
			return domain.ErrNotFound
		}
		if err := r.Services.DeleteItems(ctx, id); err != nil {
			return err
		}
		if err := r.Finance.DeleteByServiceRealizedID(ctx, id); err != nil {
			return err
		}
		return r.Services.Delete(ctx, id)
	})
}

// Get carrega um serviço realizado com seus itens (leitura fora de transação).
func (uc *UseCase) Get(ctx context.Context, id string) (*Result, error) {
	svc, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.services.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Result{Record: svc, Items: items}, nil
}

// List lista serviços realizados (sem itens).
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.ServiceRealized, error) {
	return uc.services.List(ctx, limit, offset)
}
