// Package rest implementa los puertos CategoryGateway y ProductGateway contra el backend REST
// del catálogo usando net/http.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/pkg/jwt"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

var (
	_ ports.CategoryGateway = (*Client)(nil)
	_ ports.ProductGateway  = (*Client)(nil)
)

const (
	// HeaderRequestID se propaga al backend para correlacionar logs.
	HeaderRequestID = "X-Request-ID"

	scopeRead  = "catalog:read"
	scopeWrite = "catalog:write"

	// solo acota el cuerpo de las respuestas de error; los 2xx se leen completos
	maxErrorBodyBytes = 64 << 10
)

// Options configura el cliente.
type Options struct {
	BaseURL    string        // p. ej. http://localhost:8081
	Timeout    time.Duration // por llamada; 0 = 10 s
	ClientName string        // subject del token de servicio
	JWTSecret  string        // vacío = sin Authorization
	JWTIssuer  string
	JWTExpMin  int
	HTTPClient *http.Client // opcional (tests)
}

// Client adaptador HTTP hacia el backend. Seguro para uso concurrente.
type Client struct {
	opts Options
	http *http.Client
	log  *logger.Logger
}

// NewClient construye el cliente.
func NewClient(opts Options, log *logger.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ClientName == "" {
		opts.ClientName = "catalogo-web"
	}
	if opts.JWTExpMin <= 0 {
		opts.JWTExpMin = 5
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{opts: opts, http: hc, log: log.Named("rest")}
}

type requestIDKey struct{}

// WithRequestID asocia un id de petición al contexto; el cliente lo envía como X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// do ejecuta una llamada. Cualquier fallo se devuelve envolviendo domain.ErrRemote;
// un 404 envuelve además domain.ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: serializar %s %s: %v", domain.ErrRemote, method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: crear request %s %s: %v", domain.ErrRemote, method, path, err)
	}
	rid := requestID(ctx)
	req.Header.Set(HeaderRequestID, rid)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.opts.JWTSecret != "" {
		scope := scopeWrite
		if method == http.MethodGet {
			scope = scopeRead
		}
		tok, err := jwt.Generate(c.opts.JWTSecret, c.opts.ClientName, scope, c.opts.JWTIssuer, c.opts.JWTExpMin)
		if err != nil {
			return fmt.Errorf("%w: firmar token: %v", domain.ErrRemote, err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s %s: timeout o cancelación: %v", domain.ErrRemote, method, path, ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", rid).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		detail := string(raw)
		var er dto.ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Code != "" {
			detail = er.Code + ": " + er.Message
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w: %s %s: %s", domain.ErrRemote, domain.ErrNotFound, method, path, detail)
		}
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", domain.ErrRemote, method, path, resp.StatusCode, detail)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: deserializar %s %s: %v", domain.ErrRemote, method, path, err)
	}
	return nil
}
