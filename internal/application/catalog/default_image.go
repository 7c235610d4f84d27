package catalog

import (
	"encoding/base64"
	"sync"
)

// PNG 1x1 cinza usado como imagem padrão de produto.
const defaultImagePNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mPcvHHLfwAGmgLGZsxrNQAAAABJRU5ErkJggg=="

var (
	defaultImageOnce sync.Once
	defaultImageURL  string
)

// DefaultProductImage devolve a data URL da imagem padrão de produto.
// Dado somente-leitura, processado uma única vez por processo.
func DefaultProductImage() string {
	defaultImageOnce.Do(func() {
		// Validação na primeira leitura: se o blob embutido estiver corrompido,
		// a URL fica vazia e o front usa o placeholder dele.
		if _, err := base64.StdEncoding.DecodeString(defaultImagePNG); err != nil {
			defaultImageURL = ""
			return
		}
		defaultImageURL = "data:image/png;base64," + defaultImagePNG
	})
	return defaultImageURL
}
