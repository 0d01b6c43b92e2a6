package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

// CatalogRepository loads card archetypes from Postgres.
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a catalog repository on the given pool.
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCardTypes reads and validates every card archetype. Footprints and
// effects are stored as JSONB columns with the same shape as the wire format.
func (r *CatalogRepository) ListCardTypes(ctx context.Context) ([]*catalog.CardType, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT key, name, power, pawn_requirement, areas, effect
		FROM card_types
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("querying card types: %w", err)
	}
	defer rows.Close()

	var types []*catalog.CardType
	for rows.Next() {
		var (
			ct         catalog.CardType
			areasJSON  []byte
			effectJSON []byte
		)
		if err := rows.Scan(&ct.Key, &ct.Name, &ct.Power, &ct.PawnRequirement, &areasJSON, &effectJSON); err != nil {
			return nil, fmt.Errorf("scanning card type: %w", err)
		}
		if err := json.Unmarshal(areasJSON, &ct.Areas); err != nil {
			return nil, fmt.Errorf("decoding areas for %q: %w", ct.Key, err)
		}
		if len(effectJSON) > 0 {
			var effect catalog.Effect
			if err := json.Unmarshal(effectJSON, &effect); err != nil {
				return nil, fmt.Errorf("decoding effect for %q: %w", ct.Key, err)
			}
			ct.Effect = &effect
		}
		if err := ct.Validate(); err != nil {
			return nil, err
		}
		types = append(types, &ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card types: %w", err)
	}
	return types, nil
}
