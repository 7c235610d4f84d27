package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestorpro/gestor-api/pkg/strutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Shampoo", "shampoo"},
		{"Coloração", "coloracao"},
		{"José André", "jose andre"},
		{"AÇAÍ", "acai"},
		{"ja-normalizado 123", "ja-normalizado 123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strutil.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}
