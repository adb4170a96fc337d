package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
)

// Client implements the GraphAPI port over the collaborator's REST
// interface. Calls run through a circuit breaker: a tripped breaker
// fails fast, it never retries on the caller's behalf.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ ports.GraphAPI = (*Client)(nil)

// NewClient creates a collaborator API client
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "graph-api",
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout, Transport: transport},
		breaker: breaker,
		logger:  logger,
	}
}

// Users fetches every user
func (c *Client) Users(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	if err := c.getJSON(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions fetches every transaction
func (c *Client) Transactions(ctx context.Context) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := c.getJSON(ctx, "/api/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserRelationships fetches the neighborhood centered on a user
func (c *Client) UserRelationships(ctx context.Context, id int64) (entities.UserNeighborhood, error) {
	var out entities.UserNeighborhood
	if err := c.getJSON(ctx, fmt.Sprintf("/api/relationships/user/%d", id), &out); err != nil {
		return entities.UserNeighborhood{}, err
	}
	return out, nil
}

// TransactionRelationships fetches the neighborhood centered on a
// transaction
func (c *Client) TransactionRelationships(ctx context.Context, id int64) (entities.TransactionNeighborhood, error) {
	var out entities.TransactionNeighborhood
	if err := c.getJSON(ctx, fmt.Sprintf("/api/relationships/transaction/%d", id), &out); err != nil {
		return entities.TransactionNeighborhood{}, err
	}
	return out, nil
}

// shortestPathResponse accepts both historically divergent wire shapes
type shortestPathResponse struct {
	Segments []entities.PathSegment `json:"segments"`
	Path     []entities.PathNode    `json:"path"`
}

// ShortestPathUsers fetches the computed path between two users,
// selecting the result variant by which field the response carries
func (c *Client) ShortestPathUsers(ctx context.Context, fromID, toID int64) (entities.PathResult, error) {
	var out shortestPathResponse
	path := fmt.Sprintf("/api/analytics/shortest-path/users/%d/%d", fromID, toID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return entities.PathResult{}, err
	}
	return entities.PathResult{Segments: out.Segments, Ordered: out.Path}, nil
}

// TransactionClusters fetches every cluster assignment
func (c *Client) TransactionClusters(ctx context.Context) ([]entities.ClusterAssignment, error) {
	var out struct {
		Clusters []entities.ClusterAssignment `json:"clusters"`
	}
	if err := c.getJSON(ctx, "/api/analytics/transaction-clusters", &out); err != nil {
		return nil, err
	}
	return out.Clusters, nil
}

// ExportJSON fetches the full graph export
func (c *Client) ExportJSON(ctx context.Context) (entities.GraphExport, error) {
	var out entities.GraphExport
	if err := c.getJSON(ctx, "/api/export/json", &out); err != nil {
		return entities.GraphExport{}, err
	}
	return out, nil
}

// ExportCSV streams the tabular export; the payload is opaque here
func (c *Client) ExportCSV(ctx context.Context) (io.ReadCloser, error) {
	body, err := c.get(ctx, "/api/export/csv")
	if err != nil {
		return nil, err
	}
	return body, nil
}

// getJSON fetches a path and decodes the JSON body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return pkgerrors.NewFetchError("decoding collaborator response", err).
			WithDetail("path", path)
	}
	return nil
}

// get performs one GET through the breaker, mapping transport failures
// and non-2xx statuses to fetch errors
func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp.Body, nil
	})
	if err != nil {
		c.logger.Error("collaborator fetch failed", zap.String("path", path), zap.Error(err))
		return nil, pkgerrors.NewFetchError("collaborator API request failed", err).
			WithDetail("path", path)
	}
	return result.(io.ReadCloser), nil
}
