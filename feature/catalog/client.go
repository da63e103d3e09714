package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider defines the interface for remote catalog reads.
// Each method performs one batch fetch for its entity kind.
type Provider interface {
	// Stations fetches all hideout stations with their level tiers.
	Stations(ctx context.Context) ([]Station, error)
	// Traders fetches all traders with their loyalty tiers.
	Traders(ctx context.Context) ([]Trader, error)
	// Items fetches all items with task usage and craft graph.
	Items(ctx context.Context) ([]Item, error)
	// Tasks fetches all tasks with requirements and objectives.
	Tasks(ctx context.Context) ([]Task, error)
	// Maps fetches all map descriptors.
	Maps(ctx context.Context) ([]Map, error)
}

// Client is the GraphQL-backed Provider implementation.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a catalog client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	return &Client{
		endpoint: cfg.Endpoint,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// query executes a single GraphQL POST and unmarshals the data envelope
// into out. Any transport failure, non-2xx status or error envelope fails
// the whole fetch for that kind.
func (c *Client) query(ctx context.Context, query string, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for context without trusting its size
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var envelope graphQLEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("malformed catalog payload: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("catalog error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("malformed catalog data: %w", err)
	}

	return nil
}

// Stations fetches all hideout stations with their level tiers.
func (c *Client) Stations(ctx context.Context) ([]Station, error) {
	var data struct {
		HideoutStations []wireStation `json:"hideoutStations"`
	}
	if err := c.query(ctx, stationsQuery, &data); err != nil {
		return nil, err
	}

	stations := make([]Station, 0, len(data.HideoutStations))
	for _, ws := range data.HideoutStations {
		stations = append(stations, ws.toStation())
	}
	return stations, nil
}

// Traders fetches all traders with their loyalty tiers.
func (c *Client) Traders(ctx context.Context) ([]Trader, error) {
	var data struct {
		Traders []wireTrader `json:"traders"`
	}
	if err := c.query(ctx, tradersQuery, &data); err != nil {
		return nil, err
	}

	traders := make([]Trader, 0, len(data.Traders))
	for _, wt := range data.Traders {
		traders = append(traders, wt.toTrader())
	}
	return traders, nil
}

// Items fetches all items with task usage and craft graph.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var data struct {
		Items []wireItem `json:"items"`
	}
	if err := c.query(ctx, itemsQuery, &data); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(data.Items))
	for _, wi := range data.Items {
		items = append(items, wi.toItem())
	}
	return items, nil
}

// Tasks fetches all tasks with requirements and objectives.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var data struct {
		Tasks []wireTask `json:"tasks"`
	}
	if err := c.query(ctx, tasksQuery, &data); err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(data.Tasks))
	for _, wt := range data.Tasks {
		tasks = append(tasks, wt.toTask())
	}
	return tasks, nil
}

// Maps fetches all map descriptors.
func (c *Client) Maps(ctx context.Context) ([]Map, error) {
	var data struct {
		Maps []Map `json:"maps"`
	}
	if err := c.query(ctx, mapsQuery, &data); err != nil {
		return nil, err
	}
	return data.Maps, nil
}
