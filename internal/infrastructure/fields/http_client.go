// Package fields consulta las definiciones de campos adicionales a un servicio HTTP externo.
package fields

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
)

var _ columns.FieldSource = (*HTTPClient)(nil)

// HTTPConfig configura el cliente de campos.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// HTTPClient implementa columns.FieldSource contra GET {base}/clientes/:id/campos.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient construye el cliente. BaseURL es obligatorio.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("fields: base url es requerido")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &HTTPClient{baseURL: cfg.BaseURL, apiKey: cfg.APIKey, client: httpClient}, nil
}

// FetchFields devuelve las definiciones del cliente para la entidad.
// Acepta las dos formas de respuesta: {"fields": [...]} y [...].
func (c *HTTPClient) FetchFields(ctx context.Context, clienteID, entidad string) ([]columns.FieldDefinition, error) {
	path := "/clientes/" + url.PathEscape(clienteID) + "/campos"
	if entidad != "" {
		path += "?entidad=" + url.QueryEscape(entidad)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, &raw); err != nil {
		return nil, err
	}
	return DecodeFields(raw)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fields: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fields: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("fields: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("fields: decode response: %w", err)
	}
	return nil
}

type fieldPayload struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Type    string          `json:"type"`
	Options json.RawMessage `json:"options,omitempty"`
}

type fieldsEnvelope struct {
	Fields []fieldPayload `json:"fields"`
}

type optionPayload struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DecodeFields normaliza cualquiera de las dos formas de respuesta a una sola lista.
func DecodeFields(raw []byte) ([]columns.FieldDefinition, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var list []fieldPayload
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("fields: decode lista: %w", err)
		}
	case '{':
		var env fieldsEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("fields: decode objeto: %w", err)
		}
		list = env.Fields
	default:
		return nil, fmt.Errorf("fields: respuesta inesperada")
	}
	out := make([]columns.FieldDefinition, 0, len(list))
	for _, f := range list {
		out = append(out, columns.FieldDefinition{
			ID:      f.ID,
			Label:   f.Label,
			Type:    f.Type,
			Options: decodeOptions(f.Options),
		})
	}
	return out, nil
}

// decodeOptions acepta ["a","b"] o [{"value":"a","label":"A"}]; otra forma se ignora.
func decodeOptions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var objs []optionPayload
	if err := json.Unmarshal(raw, &objs); err != nil {
		return nil
	}
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		if o.Value != "" {
			out = append(out, o.Value)
		} else {
			out = append(out, o.Label)
		}
	}
	return out
}
