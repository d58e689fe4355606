// Package imagenes implementa el relay hacia el host externo de imágenes:
// las subidas se reenvían por multipart y se persiste la URL devuelta.
// Usa net/http de la stdlib; no requiere librerías de terceros.
package imagenes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/jadebro/livecommerce-api/pkg/config"
)

// Subida resultado de una subida al host de imágenes.
type Subida struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Client cliente HTTP del servicio externo de imágenes.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout configurado.
func NewClient(cfg config.ImagenesConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Upload reenvía los bytes de una imagen al host y devuelve URL + public id.
func (c *Client) Upload(ctx context.Context, nombre, mimeType string, data []byte) (*Subida, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", nombre)
	if err != nil {
		return nil, fmt.Errorf("imagenes: preparar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("imagenes: escribir multipart: %w", err)
	}
	_ = w.WriteField("content_type", mimeType)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("imagenes: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("imagenes: crear petición: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagenes: subir: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("imagenes: el host respondió %d: %s", resp.StatusCode, string(b))
	}

	var out Subida
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("imagenes: decodificar respuesta: %w", err)
	}
	if out.URL == "" {
		return nil, fmt.Errorf("imagenes: respuesta sin url")
	}
	return &out, nil
}

// Delete pide el borrado remoto de una imagen por su public id.
// El llamador decide si el fallo es fatal; el borrado local nunca depende de esto.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	endpoint := c.baseURL + "/images/" + url.PathEscape(publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("imagenes: crear petición de borrado: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("imagenes: borrar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("imagenes: el host respondió %d al borrar", resp.StatusCode)
	}
	return nil
}
