package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

const brasilAPIBody = `{
	"razao_social": "FOLHITA COMUNICACAO VISUAL LTDA",
	"nome_fantasia": "FOLHITA",
	"email": "contato@folhita.com.br",
	"ddd_telefone_1": "7399827391",
	"logradouro": "PRACA CASTELO BRANCO",
	"numero": "120",
	"bairro": "CENTRO",
	"municipio": "ITAMARAJU",
	"uf": "BA",
	"cep": "45836000"
}`

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cnpj/v1/11222333000181", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(brasilAPIBody))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	rec, err := client.Lookup(context.Background(), "11.222.333/0001-81")

	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", rec.CNPJ)
	assert.Equal(t, "FOLHITA COMUNICACAO VISUAL LTDA", rec.LegalName)
	assert.Equal(t, "FOLHITA", rec.TradeName)
	assert.Equal(t, "contato@folhita.com.br", rec.Email)
	assert.Equal(t, "7399827391", rec.Phone)
	assert.Equal(t, "PRACA CASTELO BRANCO", rec.Street)
	assert.Equal(t, "120", rec.Number)
	assert.Equal(t, "CENTRO", rec.District)
	assert.Equal(t, "ITAMARAJU", rec.City)
	assert.Equal(t, "BA", rec.State)
	assert.Equal(t, "45836000", rec.PostalCode)
}

func TestLookup_TradeNameFallsBackToLegalName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"razao_social": "ACME COMERCIO LTDA", "nome_fantasia": ""}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	rec, err := client.Lookup(context.Background(), "11222333000181")

	require.NoError(t, err)
	assert.Equal(t, "ACME COMERCIO LTDA", rec.TradeName)
	assert.Empty(t, rec.Email, "absent optionals map to empty string")
}

func TestLookup_InvalidCNPJ_NoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	for _, in := range []string{"123", "", "11.222.333/0001-8", "112223330001811"} {
		rec, err := client.Lookup(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidCNPJ, "input=%q", in)
		assert.Nil(t, rec)
	}
	assert.Equal(t, int32(0), calls.Load(), "validation must happen before any request")
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"CNPJ não encontrado"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	rec, err := client.Lookup(context.Background(), "11222333000181")

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Nil(t, rec, "no partial record on failure")
}

func TestLookup_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Lookup(context.Background(), "11222333000181")

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Equal(t, int32(1), calls.Load(), "lookup has no retry policy")
}

func TestLookup_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Lookup(context.Background(), "11222333000181")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	rec, err := client.Lookup(context.Background(), "11222333000181")
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Nil(t, rec)
}

type captureObserver struct {
	events []LookupEvent
}

func (c *captureObserver) OnLookupComplete(e LookupEvent) { c.events = append(c.events, e) }

func TestLookup_ObserverReceivesEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(brasilAPIBody))
	}))
	defer srv.Close()

	obs := &captureObserver{}
	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.Lookup(context.Background(), "11222333000181")

	require.NoError(t, err)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "0181", obs.events[0].CNPJSuffix)
}
