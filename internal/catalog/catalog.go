// Package catalog holds the fixed, ordered set of workout blocks a user
// can add to the plan. The catalog is read-only for the whole session:
// it is built once at startup and never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/fitboard/internal/domain"
)

type Catalog struct {
	blocks []domain.BlockDefinition
	byID   map[string]int
}

// New builds a catalog from an ordered list of block definitions.
// Block IDs must be unique; the order of the input is the display order.
func New(blocks []domain.BlockDefinition) (*Catalog, error) {
	c := &Catalog{
		blocks: make([]domain.BlockDefinition, len(blocks)),
		byID:   make(map[string]int, len(blocks)),
	}
	copy(c.blocks, blocks)
	for i, b := range c.blocks {
		if b.ID == "" {
			return nil, fmt.Errorf("block %d (%q) has no ID", i, b.Name)
		}
		if _, exists := c.byID[b.ID]; exists {
			return nil, fmt.Errorf("duplicate block ID %q", b.ID)
		}
		c.byID[b.ID] = i
	}
	return c, nil
}

// Blocks returns the blocks in catalog order. The returned slice is a copy.
func (c *Catalog) Blocks() []domain.BlockDefinition {
	out := make([]domain.BlockDefinition, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Get looks up a block by ID.
func (c *Catalog) Get(id string) (domain.BlockDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.BlockDefinition{}, false
	}
	return c.blocks[i], true
}

// Len returns the number of blocks in the catalog.
func (c *Catalog) Len() int { return len(c.blocks) }
