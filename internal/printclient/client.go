// Package printclient talks to the external print-service that stores and
// renders print-form templates. The service is an opaque collaborator; this
// client only mirrors its request/response contract.
package printclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// TemplateMeta is the print-service's description of one stored template.
type TemplateMeta struct {
	TemplateID    uuid.UUID                  `json:"templateId"`
	TemplateCode  string                     `json:"templateCode"`
	TemplateGroup string                     `json:"templateGroup"`
	Description   string                     `json:"description"`
	Schema        map[string]json.RawMessage `json:"schema"`
	CreationDate  time.Time                  `json:"creationDate"`
	UpdateDate    time.Time                  `json:"updateDate"`
}

type FindTemplatesResponse struct {
	Page struct {
		TotalNumberOfRows int64 `json:"totalNumberOfRows"`
	} `json:"page"`
	Templates []TemplateMeta `json:"templates"`
}

type CreateTemplateRequest struct {
	TemplateCode string `json:"templateCode"`
	Description  string `json:"description"`
}

type UpdateTemplateRequest struct {
	TemplateID  uuid.UUID `json:"templateId"`
	Description string    `json:"description"`
}

// Client wraps the print-service HTTP API behind a circuit breaker. Calls
// are not retried: a failed call surfaces immediately and feeds the breaker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	settings := gobreaker.Settings{
		Name:        "print-service",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

// FindTemplates lists every template the print-service knows about.
func (c *Client) FindTemplates(ctx context.Context) (*FindTemplatesResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/template/find", "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		return nil, err
	}

	var response FindTemplatesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode find templates response: %w", err)
	}
	return &response, nil
}

// DownloadTemplate fetches the raw template file bytes.
func (c *Client) DownloadTemplate(ctx context.Context, templateID uuid.UUID) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/template/"+templateID.String()+"/download", "", nil)
}

// CreateTemplate registers a new template, uploading the file at filePath.
func (c *Client) CreateTemplate(ctx context.Context, req CreateTemplateRequest, filePath string) error {
	contentType, body, err := multipartBody(req, filePath)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, "/api/v1/template", contentType, body)
	return err
}

// UpdateTemplate replaces an existing template's file and description.
func (c *Client) UpdateTemplate(ctx context.Context, req UpdateTemplateRequest, filePath string) error {
	contentType, body, err := multipartBody(req, filePath)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, "/api/v1/template/"+req.TemplateID.String(), contentType, body)
	return err
}

func (c *Client) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/template/"+templateID.String(), "", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("print-service returned status %d", resp.StatusCode)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// multipartBody builds a multipart request with the metadata as a JSON part
// and the file contents as a file part.
func multipartBody(meta any, filePath string) (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", nil, err
	}
	if err := writer.WriteField("request", string(metaJSON)); err != nil {
		return "", nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", nil, err
	}

	if err := writer.Close(); err != nil {
		return "", nil, err
	}
	return writer.FormDataContentType(), &buf, nil
}
