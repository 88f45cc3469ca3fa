package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/pkg/money"
)

func TestNewFormatter_ParametrosInvalidos(t *testing.T) {
	_, err := money.NewFormatter("pt-BR", "XXXX")
	assert.Error(t, err, "código ISO inválido")

	_, err = money.NewFormatter("no es un locale!", "BRL")
	assert.Error(t, err, "locale inválido")
}

func TestFormat_IncluyeSimboloDeLaMoneda(t *testing.T) {
	f, err := money.NewFormatter("pt-BR", "BRL")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("179.9"))
	assert.Contains(t, out, "R$")
	assert.Contains(t, out, "179")
	assert.Equal(t, "BRL", f.Currency())
}

func TestFormat_RedondeaADosDecimales(t *testing.T) {
	f := money.MustFormatter("pt-BR", "BRL")

	assert.Equal(t,
		f.Format(decimal.RequireFromString("10.00")),
		f.Format(decimal.RequireFromString("9.999")),
		"9.999 debe redondearse a 10.00")
	assert.NotEqual(t,
		f.Format(decimal.RequireFromString("10")),
		f.Format(decimal.RequireFromString("11")))
}

func TestMustFormatter_PanicConMonedaInvalida(t *testing.T) {
	assert.Panics(t, func() { money.MustFormatter("pt-BR", "??") })
}
