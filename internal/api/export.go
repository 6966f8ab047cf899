package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ExportPDF fetches the rendered PDF for a generated content item as an opaque
// binary payload. Callers decide where the bytes land.
func (c *Client) ExportPDF(ctx context.Context, contentID string) ([]byte, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, errors.New("export: content id required")
	}
	return c.send(ctx, http.MethodGet, "/api/export/pdf/"+contentID, nil, "application/pdf")
}
