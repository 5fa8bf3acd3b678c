package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/folhita/catalogo/internal/domain"
)

// LookupClient resolves a company record from its CNPJ.
type LookupClient interface {
	// Lookup cleans raw to digits and queries the registry. It makes a
	// single attempt; retrying is up to the caller.
	Lookup(ctx context.Context, raw string) (*domain.ClientRecord, error)
}

// httpClient implements LookupClient against the BrasilAPI CNPJ endpoint.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a LookupClient for the configured registry endpoint.
func NewClient(cfg Config, observer Observer) LookupClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// cnpjResponse is the subset of the BrasilAPI /cnpj/v1 payload we map.
type cnpjResponse struct {
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	Email        string `json:"email"`
	Telefone     string `json:"ddd_telefone_1"`
	Logradouro   string `json:"logradouro"`
	Numero       string `json:"numero"`
	Bairro       string `json:"bairro"`
	Municipio    string `json:"municipio"`
	UF           string `json:"uf"`
	CEP          string `json:"cep"`
}

func (c *httpClient) Lookup(ctx context.Context, raw string) (*domain.ClientRecord, error) {
	cnpj := CleanCNPJ(raw)
	if len(cnpj) != cnpjDigits {
		return nil, ErrInvalidCNPJ
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	record, err := c.doLookup(ctx, cnpj)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		code := "UNAVAILABLE"
		if ctx.Err() != nil {
			code = "TIMEOUT"
		}
		c.observer.OnLookupComplete(LookupEvent{
			CNPJSuffix: cnpj[len(cnpj)-4:],
			LatencyMs:  latency,
			Success:    false,
			ErrorCode:  code,
		})
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	c.observer.OnLookupComplete(LookupEvent{
		CNPJSuffix: cnpj[len(cnpj)-4:],
		LatencyMs:  latency,
		Success:    true,
	})
	return record, nil
}

func (c *httpClient) doLookup(ctx context.Context, cnpj string) (*domain.ClientRecord, error) {
	url := c.cfg.Endpoint + "/api/cnpj/v1/" + cnpj
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var payload cnpjResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	tradeName := payload.NomeFantasia
	if tradeName == "" {
		tradeName = payload.RazaoSocial
	}

	return &domain.ClientRecord{
		CNPJ:       FormatCNPJ(cnpj),
		LegalName:  payload.RazaoSocial,
		TradeName:  tradeName,
		Email:      payload.Email,
		Phone:      payload.Telefone,
		Street:     payload.Logradouro,
		Number:     payload.Numero,
		District:   payload.Bairro,
		City:       payload.Municipio,
		State:      payload.UF,
		PostalCode: payload.CEP,
	}, nil
}
