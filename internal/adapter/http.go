package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/utils"
	"github.com/MKhiriev/jca-proxy/models"
)

const (
	recordsPath = "/collections/{collection}/records"
	recordPath  = "/collections/{collection}/records/{identifier}"
)

type httpPersistenceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPersistenceAdapter constructs a REST implementation of
// [PersistenceAdapter] for the service reachable at address. A zero timeout
// leaves requests bounded only by their context.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPPersistenceAdapter(address string, timeout time.Duration, logger *logger.Logger) (PersistenceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote storage address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpPersistenceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Find implements [PersistenceAdapter] with
// GET /collections/{collection}/records/{identifier}.
func (h *httpPersistenceAdapter) Find(ctx context.Context, collection, identifier string) (models.JcaData, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"collection": collection, "identifier": identifier}).
		Get(recordPath)
	if err != nil {
		return nil, fmt.Errorf("find record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	record, err := models.UnmarshalJcaData(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return record, nil
}

// FindAll implements [PersistenceAdapter] with
// GET /collections/{collection}/records.
func (h *httpPersistenceAdapter) FindAll(ctx context.Context, collection string) ([]models.JcaData, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("collection", collection).
		Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("find records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	records, err := models.UnmarshalJcaDataList(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return records, nil
}

// Save implements [PersistenceAdapter] with
// PUT /collections/{collection}/records/{identifier}. Any 2xx status counts
// as success.
func (h *httpPersistenceAdapter) Save(ctx context.Context, collection, identifier string, record models.JcaData) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"collection": collection, "identifier": identifier}).
		SetBody(record).
		Put(recordPath)
	if err != nil {
		return fmt.Errorf("save record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("collection", collection).
		Str("identifier", identifier).
		Int("status", resp.StatusCode()).
		Msg("record saved to remote storage")

	return nil
}
