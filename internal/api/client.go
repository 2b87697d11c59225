package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lk16/tackle/internal/config"
	"github.com/lk16/tackle/internal/models"
)

const (
	clientTimeout = 5 * time.Second
)

// Client talks to the game server API with token authentication.
type Client struct {
	config *config.ClientConfig
	client *http.Client
}

// NewClient creates a new API client.
func NewClient(config *config.ClientConfig) *Client {
	return &Client{
		config: config,
		client: &http.Client{Timeout: clientTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, response any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-token", c.config.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ArchiveGame uploads a finished game record.
func (c *Client) ArchiveGame(ctx context.Context, record string) (models.ArchivedGame, error) {
	payload := models.ArchiveGamePayload{Record: record}

	var row models.ArchivedGame
	if err := c.do(ctx, http.MethodPost, "/api/archive", payload, &row); err != nil {
		return models.ArchivedGame{}, err
	}
	return row, nil
}

// GetStats fetches aggregate archive statistics.
func (c *Client) GetStats(ctx context.Context) (models.ArchiveStats, error) {
	var stats models.ArchiveStats
	if err := c.do(ctx, http.MethodGet, "/api/archive/stats", nil, &stats); err != nil {
		return models.ArchiveStats{}, err
	}
	return stats, nil
}
