package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"pharmadmin/internal/core/ports"
	"pharmadmin/internal/pkg/errs"
)

var (
	_ ports.OrderSource          = (*Client)(nil)
	_ ports.InTransitOrderSource = (*Client)(nil)
)

// FetchOrders reads the e-commerce order collection. A record that cannot
// be decoded or fails domain validation is skipped and listed in Skipped.
func (c *Client) FetchOrders(ctx context.Context) (ports.OrderBatch, error) {
	content, err := c.fetchContent(ctx, c.cfg.OrdersPath, c.pageQuery(true))
	if err != nil {
		return ports.OrderBatch{}, err
	}

	batch := ports.OrderBatch{}
	for i, raw := range content {
		var dto orderDTO
		if err = json.Unmarshal(raw, &dto); err != nil {
			batch.Skipped = append(batch.Skipped,
				errs.NewPayloadIsMalformedErrorWithCause(fmt.Sprintf("content[%d]", i), err))
			continue
		}
		o, mapErr := dto.toDomain()
		if mapErr != nil {
			batch.Skipped = append(batch.Skipped, fmt.Errorf("order %d: %w", dto.Header.ID, mapErr))
			continue
		}
		batch.Orders = append(batch.Orders, o)
	}
	return batch, nil
}

// FetchInTransitOrders reads the in-transit collection, skipping records the
// same way FetchOrders does.
func (c *Client) FetchInTransitOrders(ctx context.Context) (ports.InTransitBatch, error) {
	content, err := c.fetchContent(ctx, c.cfg.InTransitPath, c.pageQuery(false))
	if err != nil {
		return ports.InTransitBatch{}, err
	}

	batch := ports.InTransitBatch{}
	for i, raw := range content {
		var dto inTransitOrderDTO
		if err = json.Unmarshal(raw, &dto); err != nil {
			batch.Skipped = append(batch.Skipped,
				errs.NewPayloadIsMalformedErrorWithCause(fmt.Sprintf("content[%d]", i), err))
			continue
		}
		o, mapErr := dto.toDomain()
		if mapErr != nil {
			batch.Skipped = append(batch.Skipped, fmt.Errorf("in-transit order %d: %w", dto.ID, mapErr))
			continue
		}
		batch.Orders = append(batch.Orders, o)
	}
	return batch, nil
}
