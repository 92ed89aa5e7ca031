package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	viamutils "go.viam.com/utils"
)

// NotFoundError is returned when the store has no point set under the
// requested ID.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("point set %q not found", e.ID)
}

// UpstreamError is returned when the store answers with an unexpected
// status.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("point set store answered %s", e.Status)
}

// Client fetches encoded point sets from a point set store over HTTP.
type Client struct {
	root   string
	client http.Client
}

// NewClient returns a client for the store at root,
// e.g. http://localhost:8081.
func NewClient(root string) *Client {
	return &Client{root: strings.TrimSuffix(root, "/")}
}

// FetchPointSet returns the raw encoded point set stored under id. A
// missing id yields a NotFoundError, any other non-OK answer an
// UpstreamError, and failing to reach the store at all a wrapped
// transport error.
func (c *Client) FetchPointSet(ctx context.Context, id string) ([]byte, error) {
	url := fmt.Sprintf("%s/pointsets/%s", c.root, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't reach point set store at %s", c.root)
	}
	defer func() {
		viamutils.UncheckedError(resp.Body.Close())
	}()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NotFoundError{ID: id}
	case resp.StatusCode != http.StatusOK:
		return nil, UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return io.ReadAll(resp.Body)
}
