package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter convierte montos a texto de moneda para un locale (ej. pt-BR + BRL → "R$ 179,90").
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter construye el formateador. locale es un tag BCP 47 y code un código ISO 4217.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale inválido %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("moneda inválida %q: %w", code, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}, nil
}

// MustFormatter como NewFormatter pero hace panic; solo para valores constantes.
func MustFormatter(locale, code string) *Formatter {
	f, err := NewFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Format redondea a 2 decimales y devuelve el monto con el símbolo de la moneda.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.Round(2).InexactFloat64())))
}

// Currency devuelve el código ISO de la moneda configurada.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
