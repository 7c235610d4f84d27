package dto

// Response envelope comum das operações: flag de sucesso + mensagem.
// Os colaboradores inspecionam o resultado em vez de depender de exceções.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
