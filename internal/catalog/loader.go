package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Parse decodes a JSON array of card-type records and validates each entry.
func Parse(data []byte) ([]*CardType, error) {
	var types []*CardType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("decoding card types: %w", err)
	}
	seen := make(map[string]bool, len(types))
	for _, ct := range types {
		if err := ct.Validate(); err != nil {
			return nil, err
		}
		if ct.Key != "" {
			if seen[ct.Key] {
				return nil, fmt.Errorf("duplicate card type key %q", ct.Key)
			}
			seen[ct.Key] = true
		}
	}
	return types, nil
}

// FetchHTTP loads the card catalog from a remote JSON endpoint.
func FetchHTTP(ctx context.Context, endpoint string, timeout time.Duration, logger *zap.Logger) ([]*CardType, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog from %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint %s returned %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	types, err := Parse(body)
	if err != nil {
		return nil, err
	}
	logger.Info("card catalog fetched",
		zap.String("endpoint", endpoint),
		zap.Int("card_types", len(types)),
	)
	return types, nil
}
