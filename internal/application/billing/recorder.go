package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// CategoryServices categoria dos lançamentos gerados por serviço realizado.
const CategoryServices = "servicos"

// Recorder gera o lançamento financeiro de um serviço concluído exatamente uma
// vez. A unicidade é procedural: verificação de existência antes do insert,
// sempre dentro da transação do chamador e protegida pelo lock da linha do
// serviço tomado antes desta chamada.
type Recorder struct{}

// NewRecorder constrói o recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// EnsureBilled verifica se já existe lançamento vinculado ao serviço; se não,
// insere um único FinanceMovement de entrada ("in"), status "paid", com o
// total geral do serviço. Retorna alreadyBilled=true quando já existia.
func (rec *Recorder) EnsureBilled(ctx context.Context, finance repository.FinanceMovementRepository, svc *entity.ServiceRealized) (bool, error) {
	existing, err := finance.GetByServiceRealizedID(ctx, svc.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}

	ref := svc.ID
	movement := &entity.FinanceMovement{
		ID:                uuid.New().String(),
		Title:             fmt.Sprintf("Serviço realizado - %s", svc.ClientName),
		Category:          CategoryServices,
		Date:              svc.ServiceDate,
		Value:             svc.TotalValue,
		Status:            entity.FinanceStatusPaid,
		Type:              entity.FinanceTypeIn,
		ServiceRealizedID: &ref,
		CreatedAt:         time.Now(),
	}
	if err := finance.Create(ctx, movement); err != nil {
		return false, err
	}
	return false, nil
}
