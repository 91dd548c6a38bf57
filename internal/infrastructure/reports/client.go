// Package reports es el cliente del modo de exportación en el servidor:
// pide el reporte, valida la respuesta y descarga el archivo con el token.
package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/pkg/download"
)

// ErrMissingPath la API respondió 2xx sin el campo path.
var ErrMissingPath = errors.New("reports: la respuesta no incluye path")

// RemoteError respuesta no 2xx de la API.
type RemoteError struct {
	Status  int
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("reports: error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("reports: error %d", e.Status)
}

// Config configura el cliente. APIBase es la URL pública de la API (…/api).
type Config struct {
	APIBase    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client llama a POST …/reporte y arma el enlace de descarga.
type Client struct {
	apiBase string
	token   string
	client  *http.Client
}

// Report archivo generado: ruta relativa y URL de descarga con token.
type Report struct {
	Path string
	URL  string
}

// New construye el cliente. APIBase es obligatorio.
func New(cfg Config) (*Client, error) {
	if cfg.APIBase == "" {
		return nil, fmt.Errorf("reports: api base es requerido")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{apiBase: strings.TrimRight(cfg.APIBase, "/"), token: cfg.Token, client: httpClient}, nil
}

// Request pide el reporte completo de la tabla. Falla con *RemoteError si la respuesta
// no es 2xx y con ErrMissingPath si no trae path.
func (c *Client) Request(ctx context.Context, clienteID, tabla string) (*Report, error) {
	endpoint := c.apiBase + "/clientes/" + url.PathEscape(clienteID) + "/tablas/" + url.PathEscape(tabla) + "/reporte"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("reports: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reports: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var body dto.ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("reports: decode response: %w", err)
	}
	if strings.TrimSpace(body.Path) == "" {
		return nil, ErrMissingPath
	}
	return &Report{Path: body.Path, URL: c.DownloadURL(body.Path)}, nil
}

// DownloadURL une la base de la API con path y agrega el token.
func (c *Client) DownloadURL(path string) string {
	return download.URL(c.apiBase, path, c.token)
}

// Download copia el archivo del reporte en w y devuelve los bytes escritos.
func (c *Client) Download(ctx context.Context, r *Report, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("reports: build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("reports: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return 0, err
	}
	return io.Copy(w, resp.Body)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	remote := &RemoteError{Status: resp.StatusCode}
	var body dto.ErrorResponse
	if json.Unmarshal(buf.Bytes(), &body) == nil && body.Message != "" {
		remote.Code, remote.Message = body.Code, body.Message
	} else {
		remote.Message = strings.TrimSpace(buf.String())
	}
	return remote
}
