package inventory

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// Repos repositórios atados a uma mesma transação de banco.
type Repos struct {
	Products  repository.ProductRepository
	Movements repository.StockMovementRepository
}

// TxRunner executa fn dentro de uma transação, passando repositórios atados a
// ela. O runner é o dono do ciclo de vida: begin antes de fn, commit se fn
// retornar nil, rollback em qualquer erro.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
