package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go-hena-store/internal/catalog"

	"go.uber.org/zap"
)

// Engine owns the authoritative in-memory cart and saved-for-later list
// for one session. Totals are always derived from the items, and every
// mutation overwrites the persisted snapshot in full.
//
// Mutations are sequential; the mutex only guards against overlapping
// HTTP requests on the same session.
type Engine struct {
	mu     sync.Mutex
	items  []LineItem
	saved  []LineItem
	store  Store
	logger *zap.Logger
}

// NewEngine rehydrates the cart and saved items from the store. Missing
// or corrupt records fail soft to empty state; a load problem is never
// propagated to the caller.
func NewEngine(ctx context.Context, store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		store:  store,
		logger: logger,
	}
	e.items = e.loadItems(ctx, RecordCart)
	e.saved = e.loadItems(ctx, RecordSavedItems)
	return e
}

func (e *Engine) loadItems(ctx context.Context, record string) []LineItem {
	data, err := e.store.Load(ctx, record)
	if err != nil {
		if err != ErrRecordNotFound {
			e.logger.Warn("failed to load persisted record, starting empty",
				zap.String("record", record), zap.Error(err))
		}
		return []LineItem{}
	}

	if record == RecordCart {
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			e.logger.Warn("corrupt cart snapshot, starting empty", zap.Error(err))
			return []LineItem{}
		}
		return sanitize(snap.Items)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		e.logger.Warn("corrupt saved items record, starting empty", zap.Error(err))
		return []LineItem{}
	}
	return sanitize(items)
}

// sanitize drops lines a corrupt or hand-edited snapshot could contain.
func sanitize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.Product.ID == "" || li.Quantity <= 0 {
			continue
		}
		out = append(out, li)
	}
	return out
}

// AddToCart merges the addition into an existing line when the merge key
// matches, otherwise appends a new line preserving insertion order.
// Non-positive quantities and size/variant values the product does not
// offer are ignored, never surfaced as failures. Stock is informational
// only; out-of-stock products are accepted.
func (e *Engine) AddToCart(ctx context.Context, product catalog.Product, quantity int, size string, variant *catalog.Variant) error {
	if quantity <= 0 {
		e.logger.Debug("ignoring non-positive quantity",
			zap.String("product_id", product.ID), zap.Int("quantity", quantity))
		return nil
	}
	if size != "" && !product.HasSize(size) {
		e.logger.Debug("ignoring unknown size",
			zap.String("product_id", product.ID), zap.String("size", size))
		return nil
	}
	if variant != nil {
		if _, ok := product.VariantByID(variant.ID); !ok {
			e.logger.Debug("ignoring unknown variant",
				zap.String("product_id", product.ID), zap.String("variant_id", variant.ID))
			return nil
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	line := LineItem{Product: product, Quantity: quantity, Size: size, Variant: variant}

	merged := false
	for i := range e.items {
		if e.items[i].matches(line) {
			e.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, line)
	}

	return e.persistCart(ctx)
}

// RemoveFromCart removes the line at the given position. An out-of-range
// index is a no-op.
func (e *Engine) RemoveFromCart(ctx context.Context, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeLocked(ctx, index)
}

func (e *Engine) removeLocked(ctx context.Context, index int) error {
	if index < 0 || index >= len(e.items) {
		e.logger.Debug("remove index out of range", zap.Int("index", index))
		return nil
	}
	e.items = append(e.items[:index], e.items[index+1:]...)
	return e.persistCart(ctx)
}

// UpdateQuantity sets the line's quantity absolutely. A quantity of zero
// or less is equivalent to removing the line.
func (e *Engine) UpdateQuantity(ctx context.Context, index, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		return e.removeLocked(ctx, index)
	}
	if index < 0 || index >= len(e.items) {
		e.logger.Debug("update index out of range", zap.Int("index", index))
		return nil
	}

	e.items[index].Quantity = quantity
	return e.persistCart(ctx)
}

// ClearCart empties the cart and removes the persisted snapshot.
func (e *Engine) ClearCart(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = []LineItem{}
	if err := e.store.Delete(ctx, RecordCart); err != nil {
		e.logger.Error("failed to clear persisted cart", zap.Error(err))
		return ErrCartPersistence
	}
	return nil
}

// SaveForLater moves the line at index from the cart into the saved list.
func (e *Engine) SaveForLater(ctx context.Context, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.items) {
		e.logger.Debug("save index out of range", zap.Int("index", index))
		return nil
	}

	line := e.items[index]
	e.items = append(e.items[:index], e.items[index+1:]...)
	e.saved = append(e.saved, line)

	if err := e.persistSaved(ctx); err != nil {
		return err
	}
	return e.persistCart(ctx)
}

// MoveToCart removes the entry at savedIndex from the saved list and
// adds it back to the cart, merging by key against the current cart
// state rather than the saved snapshot.
func (e *Engine) MoveToCart(ctx context.Context, savedIndex int) error {
	e.mu.Lock()

	if savedIndex < 0 || savedIndex >= len(e.saved) {
		e.logger.Debug("move index out of range", zap.Int("index", savedIndex))
		e.mu.Unlock()
		return nil
	}

	line := e.saved[savedIndex]
	e.saved = append(e.saved[:savedIndex], e.saved[savedIndex+1:]...)
	if err := e.persistSaved(ctx); err != nil {
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	return e.AddToCart(ctx, line.Product, line.Quantity, line.Size, line.Variant)
}

// Items returns a copy of the current line items in insertion order.
func (e *Engine) Items() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// SavedItems returns a copy of the saved-for-later list.
func (e *Engine) SavedItems() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LineItem, len(e.saved))
	copy(out, e.saved)
	return out
}

// Totals recomputes totals from the current items.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeTotals(e.items)
}

func (e *Engine) persistCart(ctx context.Context) error {
	snap := Snapshot{Items: e.items, Totals: ComputeTotals(e.items)}
	data, err := json.Marshal(snap)
	if err != nil {
		e.logger.Error("failed to marshal cart snapshot", zap.Error(err))
		return ErrCartPersistence
	}
	if err := e.store.Save(ctx, RecordCart, data); err != nil {
		e.logger.Error("failed to persist cart", zap.Error(err))
		return ErrCartPersistence
	}
	return nil
}

func (e *Engine) persistSaved(ctx context.Context) error {
	data, err := json.Marshal(e.saved)
	if err != nil {
		e.logger.Error("failed to marshal saved items", zap.Error(err))
		return ErrCartPersistence
	}
	if err := e.store.Save(ctx, RecordSavedItems, data); err != nil {
		e.logger.Error("failed to persist saved items", zap.Error(err))
		return ErrCartPersistence
	}
	return nil
}
