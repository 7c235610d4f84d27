package fulfillment

import (
	"context"
	"fmt"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// ItemForReceipt item do serviço enriquecido com o nome do produto, pronto
// para o gerador de PDF.
type ItemForReceipt struct {
	Item        *entity.ServiceRealizedItem
	ProductName string
}

// ReceiptGenerator gera o comprovante (ordem de serviço) em PDF.
type ReceiptGenerator interface {
	Generate(ctx context.Context, svc *entity.ServiceRealized, items []ItemForReceipt) ([]byte, error)
}

// ReceiptUseCase monta os dados do comprovante e delega ao gerador.
type ReceiptUseCase struct {
	services  repository.ServiceRealizedRepository
	products  repository.ProductRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(services repository.ServiceRealizedRepository, products repository.ProductRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{services: services, products: products, generator: generator}
}

// DownloadReceipt recupera o serviço, resolve os nomes dos produtos consumidos
// e gera o PDF. Devolve os bytes e o nome de arquivo sugerido.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	svc, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obter serviço: %w", err)
	}
	if svc == nil {
		return nil, "", domain.ErrNotFound
	}

	rawItems, err := uc.services.ListItems(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obter itens: %w", err)
	}

	enriched := make([]ItemForReceipt, 0, len(rawItems))
	for _, it := range rawItems {
		name := "Produto removido"
		if p, perr := uc.products.GetByID(ctx, it.ProductID); perr == nil && p != nil {
			name = p.Name
		}
		enriched = append(enriched, ItemForReceipt{Item: it, ProductName: name})
	}

	pdfBytes, err = uc.generator.Generate(ctx, svc, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: geração falhou: %w", err)
	}

	shortID := svc.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	filename = fmt.Sprintf("ordem_servico_%s.pdf", shortID)
	return pdfBytes, filename, nil
}
