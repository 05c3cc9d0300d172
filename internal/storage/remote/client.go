package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/carson-networks/flow-server/internal/record"
)

const (
	opGetAll         = "get_all"
	opAddTransaction = "add_transaction"
	opUpdateJournal  = "update_journal"

	statusSuccess = "success"

	maxResponseBytes = 16 << 20
)

// Client talks to the spreadsheet web app that owns the transaction and journal rows.
type Client struct {
	baseURL  string
	http     *http.Client
	location *time.Location
}

// NewClient creates a Client. Row dates holding timestamps are read in loc.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		location: loc,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Fetch reads every transaction and journal row.
func (c *Client) Fetch(ctx context.Context) (*record.Snapshot, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	q := u.Query()
	q.Set("op", opGetAll)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var data wireSnapshot
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode rows: %w", err)
		}
	}
	return data.toSnapshot(c.location), nil
}

// AppendTransaction appends one transaction row.
func (c *Client) AppendTransaction(ctx context.Context, txn record.TransactionRecord) error {
	return c.post(ctx, map[string]any{
		"op":          opAddTransaction,
		"transaction": newWireTransaction(txn),
	})
}

// UpsertJournal writes the journal row for entry.Date.
func (c *Client) UpsertJournal(ctx context.Context, entry record.JournalRecord) error {
	entry.Date = record.DateKey(entry.Date)
	return c.post(ctx, map[string]any{
		"op":    opUpdateJournal,
		"entry": entry,
	})
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// The web app cannot answer a CORS preflight, so the payload travels as text/plain.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) (*envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Status != statusSuccess {
		if env.Message == "" {
			return nil, errors.New("request failed")
		}
		return nil, errors.New(env.Message)
	}
	return &env, nil
}
