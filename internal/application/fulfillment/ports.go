package fulfillment

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// Repos repositórios atados à mesma transação de um serviço realizado.
type Repos struct {
	Services  repository.ServiceRealizedRepository
	Products  repository.ProductRepository
	Movements repository.StockMovementRepository
	Finance   repository.FinanceMovementRepository
}

// Inventory projeta o bundle para o subconjunto que o razão de estoque usa,
// mantendo a mesma transação.
func (r Repos) Inventory() inventory.Repos {
	return inventory.Repos{Products: r.Products, Movements: r.Movements}
}

// TxRunner executa fn dentro de uma transação com os repositórios do fluxo de
// serviço realizado. Dono do ciclo begin/commit/rollback.
type TxRunner interface {
	RunFulfillment(ctx context.Context, fn func(r Repos) error) error
}

// Ledger porta para o razão de estoque participando da transação corrente.
type Ledger interface {
	ApplyMovementsInTx(ctx context.Context, r inventory.Repos, in inventory.ApplyMovementsInput) ([]inventory.MovementOutcome, error)
}

// Biller porta para o lançamento financeiro idempotente de um serviço concluído.
type Biller interface {
	EnsureBilled(ctx context.Context, finance repository.FinanceMovementRepository, svc *entity.ServiceRealized) (alreadyBilled bool, err error)
}
