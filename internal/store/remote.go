package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SheetClient talks to the deployed sheet script. Reads are
// GET <url>?sheet=<name>&action=read, writes are a JSON POST of
// {action, sheet, data, id}; both answer {status, data|message|error}
// where anything other than status "success" is a failure.
type SheetClient struct {
	baseURL string
	hc      *http.Client
}

func NewSheetClient(baseURL string) *SheetClient {
	return &SheetClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

type sheetEnvelope struct {
	Status  string            `json:"status"`
	Data    []json.RawMessage `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
}

func (c *SheetClient) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	u := fmt.Sprintf("%s?sheet=%s&action=read", c.baseURL, url.QueryEscape(collection))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet read %s: http %d", collection, resp.StatusCode)
	}

	var env sheetEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("sheet read %s: %w", collection, err)
	}
	if env.Status != "success" {
		return nil, fmt.Errorf("sheet read %s: %s", collection, env.failure())
	}
	return env.Data, nil
}

type sheetWrite struct {
	Action Op     `json:"action"`
	Sheet  string `json:"sheet"`
	Data   any    `json:"data"`
	ID     string `json:"id,omitempty"`
}

func (c *SheetClient) Write(ctx context.Context, op Op, collection string, record any, id string) error {
	if record == nil {
		record = map[string]any{}
	}
	body, err := json.Marshal(sheetWrite{Action: op, Sheet: collection, Data: record, ID: id})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// The script endpoint rejects JSON content types on POST; it parses the
	// raw body itself.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheet %s %s: http %d", op, collection, resp.StatusCode)
	}

	var env sheetEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("sheet %s %s: %w", op, collection, err)
	}
	if env.Status != "success" {
		return fmt.Errorf("sheet %s %s: %s", op, collection, env.failure())
	}
	return nil
}

func (e *sheetEnvelope) failure() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	default:
		return "operation failed"
	}
}
