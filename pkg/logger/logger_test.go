package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/pkg/logger"
)

func TestNew_ProductionEscribeJSONYFiltraNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("descartado")
	l.Named("cart").Warn().Int64("product_id", 7).Msg("fuera de stock")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "info no debe escribirse con nivel warn")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "cart", entry["component"])
	assert.Equal(t, float64(7), entry["product_id"])
	assert.Equal(t, "fuera de stock", entry["message"])
}

func TestNop_NoEscribeNada(t *testing.T) {
	l := logger.Nop()
	assert.NotPanics(t, func() { l.Error().Msg("nada") })
}
