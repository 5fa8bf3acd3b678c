package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhita/catalogo/internal/domain"
	"github.com/folhita/catalogo/internal/registry"
	"github.com/folhita/catalogo/internal/service"
)

func runCliente(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	app.IsInteractive = func() bool { return false }

	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"cliente"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestClienteCmd_PrintsRecord(t *testing.T) {
	app := &App{
		Lookup: service.NewLookupService(fakeLookup{rec: &domain.ClientRecord{
			CNPJ:      "19.131.243/0001-97",
			LegalName: "FOLHITA COMUNICACAO LTDA",
			TradeName: "FOLHITA",
			Email:     "contato@folhita.com.br",
			City:      "Eunápolis",
			State:     "BA",
		}}),
	}

	out, err := runCliente(t, app, "19131243000197")
	require.NoError(t, err)

	assert.Contains(t, out, "FOLHITA")
	assert.Contains(t, out, "19.131.243/0001-97")
	assert.Contains(t, out, "contato@folhita.com.br")
	assert.Contains(t, out, "Eunápolis - BA")
}

func TestClienteCmd_InvalidCNPJ(t *testing.T) {
	app := &App{
		Lookup: service.NewLookupService(fakeLookup{err: registry.ErrInvalidCNPJ}),
	}

	_, err := runCliente(t, app, "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "14 dígitos")
}

func TestClienteCmd_LookupFailure(t *testing.T) {
	app := &App{
		Lookup: service.NewLookupService(fakeLookup{
			err: registry.ErrLookupFailed,
		}),
	}

	_, err := runCliente(t, app, "19131243000197")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrLookupFailed)
}

func TestClienteCmd_RequiresArg(t *testing.T) {
	app := &App{Lookup: service.NewLookupService(fakeLookup{})}

	_, err := runCliente(t, app)
	require.Error(t, err)
}

// Guards against the context being dropped between cobra and the service.
func TestClienteCmd_PropagatesContext(t *testing.T) {
	app := &App{Lookup: service.NewLookupService(ctxCheckLookup{t: t})}

	_, err := runCliente(t, app, "19131243000197")
	require.NoError(t, err)
}

type ctxCheckLookup struct{ t *testing.T }

func (c ctxCheckLookup) Lookup(ctx context.Context, raw string) (*domain.ClientRecord, error) {
	require.NotNil(c.t, ctx)
	require.Equal(c.t, "19131243000197", raw)
	return &domain.ClientRecord{LegalName: "X"}, nil
}
