// Package notion implements the repository.Records gateway against a
// Notion-style record store: one database per game type, records encoded as
// pages with title/date/number/checkbox properties.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fortuna-games/fortuna/internal/domain"
)

// Client talks to the external record store. It holds no state beyond the
// routing table and transport; all durable state lives in the store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	databases  map[domain.Game]string
}

// NewClient creates a store client. Every known game must have a database id;
// a missing entry is a configuration defect reported here, at startup.
func NewClient(baseURL, token string, databases map[domain.Game]string) (*Client, error) {
	for _, game := range domain.Games {
		if databases[game] == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnconfiguredGame, game)
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: RequestTimeout},
		baseURL:    baseURL,
		token:      token,
		databases:  databases,
	}, nil
}

// NewBootstrapClient creates a client with no database routing table. It can
// only create databases; cmd/setup uses it before any database exists.
func NewBootstrapClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: RequestTimeout},
		baseURL:    baseURL,
		token:      token,
		databases:  map[domain.Game]string{},
	}
}

// databaseID resolves the game's database. The constructor guarantees the
// entry exists; the error path guards against future game types slipping
// through without configuration.
func (c *Client) databaseID(game domain.Game) (string, error) {
	id, ok := c.databases[game]
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnconfiguredGame, game)
	}
	return id, nil
}

// Create persists a new record as a page in the game's database.
func (c *Client) Create(ctx context.Context, rec domain.PrizeRecord, game domain.Game) error {
	dbID, err := c.databaseID(game)
	if err != nil {
		return err
	}

	body := createPageRequest{
		Parent:     parentRef{DatabaseID: dbID},
		Properties: buildProperties(rec),
	}

	resp, err := c.do(ctx, http.MethodPost, pathPages, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// List returns every record in the game's database, walking the store's
// cursor pagination with a fixed page size.
func (c *Client) List(ctx context.Context, game domain.Game) ([]domain.PrizeRecord, error) {
	dbID, err := c.databaseID(game)
	if err != nil {
		return nil, err
	}

	var records []domain.PrizeRecord
	cursor := ""
	for {
		body := queryRequest{PageSize: QueryPageSize, StartCursor: cursor}

		resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf(pathDatabaseQuery, dbID), body)
		if err != nil {
			return nil, err
		}

		var page queryResponse
		err = func() error {
			defer resp.Body.Close()
			if err := c.checkStatus(resp); err != nil {
				return err
			}
			if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrBadStoreResponse, err)
			}
			return nil
		}()
		if err != nil {
			return nil, err
		}

		for _, result := range page.Results {
			records = append(records, result.toRecord(game))
		}

		if !page.HasMore || page.NextCursor == "" {
			return records, nil
		}
		cursor = page.NextCursor
	}
}

// Update overwrites the record's properties by external page id.
func (c *Client) Update(ctx context.Context, id string, rec domain.PrizeRecord, game domain.Game) error {
	if _, err := c.databaseID(game); err != nil {
		return err
	}

	body := updatePageRequest{Properties: buildProperties(rec)}

	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf(pathPage, id), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// Delete archives the page; the store keeps it recoverable.
func (c *Client) Delete(ctx context.Context, id string, game domain.Game) error {
	if _, err := c.databaseID(game); err != nil {
		return err
	}

	body := archivePageRequest{Archived: true}

	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf(pathPage, id), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// CreateDatabase provisions a database with the record schema under the
// given parent page and returns its id.
func (c *Client) CreateDatabase(ctx context.Context, parentPageID, title string) (string, error) {
	body := createDatabaseRequest{
		Parent: pageParent{Type: "page_id", PageID: parentPageID},
		Title: []richText{{
			Type: "text",
			Text: textContent{Content: title},
		}},
		Properties: recordSchema(),
	}

	resp, err := c.do(ctx, http.MethodPost, pathDatabases, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return "", err
	}

	var created createDatabaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBadStoreResponse, err)
	}
	return created.ID, nil
}

// Ping performs a cheap authenticated call so readiness probes surface bad
// credentials or an unreachable store.
func (c *Client) Ping(ctx context.Context) error {
	dbID, err := c.databaseID(domain.GameSpin)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf(pathDatabaseQuery, dbID), queryRequest{PageSize: 1})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// do sends one JSON request. Transport failures map to ErrStoreUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode store request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build store request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps non-2xx responses to domain errors, keeping a bounded
// slice of the body for diagnostics.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: status %d: %s", domain.ErrRecordNotFound, resp.StatusCode, snippet)
	}
	return fmt.Errorf("%w: status %d: %s", domain.ErrStoreRejected, resp.StatusCode, snippet)
}
