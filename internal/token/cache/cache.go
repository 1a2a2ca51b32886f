// Package cache keeps colored transactions in memory and resolves the colors of spent outputs.
package cache

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Tag records whether a cached tx came from the mempool or from a block.
type Tag struct {
	block     chainhash.Hash
	confirmed bool
}

// Mempool tags an unconfirmed transaction.
func Mempool() Tag {
	return Tag{}
}

// Block tags a transaction mined in the given block.
func Block(hash chainhash.Hash) Tag {
	return Tag{block: hash, confirmed: true}
}

// BlockHash returns the block of a confirmed tag.
func (t Tag) BlockHash() (chainhash.Hash, bool) {
	return t.block, t.confirmed
}

func (t Tag) String() string {
	if !t.confirmed {
		return "mempool"
	}
	return t.block.String()
}

type entry struct {
	tx   *model.ColoredTx
	tag  Tag
	deps []chainhash.Hash
	// outputsOnly entries carry persisted output colors without the tx entries.
	outputsOnly bool
}

type evicted struct {
	txid  chainhash.Hash
	entry *entry
}

// ColorCache is a bounded map of colored transactions with the edges to the txs they spend.
// Dropping a transaction also drops everything that spends it, directly or transitively.
type ColorCache struct {
	mu      sync.RWMutex
	entries *lru.Cache[chainhash.Hash, *entry]
	byBlock map[chainhash.Hash]map[chainhash.Hash]struct{}
	// children maps a txid to the cached txs spending it.
	children map[chainhash.Hash]map[chainhash.Hash]struct{}
	pending  []evicted
	metrics  Metrics
}

// NewColorCache creates a cache holding at most size transactions.
func NewColorCache(size int, metrics Metrics) (*ColorCache, error) {
	c := &ColorCache{
		byBlock:  make(map[chainhash.Hash]map[chainhash.Hash]struct{}),
		children: make(map[chainhash.Hash]map[chainhash.Hash]struct{}),
		metrics:  metrics,
	}
	entries, err := lru.NewWithEvict(size, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	c.entries = entries
	return c, nil
}

// Put stores a colored tx. Replacing an entry keeps its dependents.
func (c *ColorCache) Put(tx *model.ColoredTx, tag Tag, deps []chainhash.Hash) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries.Peek(tx.TxID); ok {
		c.unlink(tx.TxID, old)
	}
	e := &entry{tx: tx, tag: tag, deps: deps}
	c.entries.Add(tx.TxID, e)
	c.link(tx.TxID, e)
	c.drain()
	c.metrics.SetSize(c.entries.Len())
}

// PutOutputs stores the output colors of a persisted tx under its block, so that
// invalidating the block also drops the cached txs spending it. A fully colored
// entry for the same tx is kept as is.
func (c *ColorCache) PutOutputs(txid chainhash.Hash, outputs []*model.ColoredValue, tag Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.entries.Peek(txid)
	if ok && !old.outputsOnly {
		return
	}
	if ok {
		c.unlink(txid, old)
	}
	e := &entry{tx: &model.ColoredTx{TxID: txid, Outputs: outputs}, tag: tag, outputsOnly: true}
	c.entries.Add(txid, e)
	c.link(txid, e)
	c.drain()
	c.metrics.SetSize(c.entries.Len())
}

// Get returns a cached colored tx and its tag. Entries stored with PutOutputs are not
// returned.
func (c *ColorCache) Get(txid chainhash.Hash) (*model.ColoredTx, Tag, bool) {
	e, ok := c.lookup(txid)
	if !ok || e.outputsOnly {
		return nil, Tag{}, false
	}
	return e.tx, e.tag, true
}

func (c *ColorCache) lookup(txid chainhash.Hash) (*entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries.Get(txid)
}

// Output returns the color of a cached output. The value is nil for an uncolored output
// and the flag is false when the tx is not cached.
func (c *ColorCache) Output(outpoint model.Outpoint) (*model.ColoredValue, bool) {
	e, ok := c.lookup(outpoint.Hash)
	if !ok {
		return nil, false
	}
	tx := e.tx
	if int(outpoint.Index) >= len(tx.Outputs) {
		return nil, true
	}
	return tx.Outputs[outpoint.Index], true
}

// InvalidateBlock drops every tx tagged with the block and all their dependents.
func (c *ColorCache) InvalidateBlock(hash chainhash.Hash) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for txid := range c.byBlock[hash] {
		c.entries.Remove(txid)
	}
	removed := c.drain()
	c.metrics.ObserveInvalidation(removed)
	c.metrics.SetSize(c.entries.Len())
	return removed
}

// Remove drops a tx and all its dependents.
func (c *ColorCache) Remove(txid chainhash.Hash) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Remove(txid)
	removed := c.drain()
	c.metrics.SetSize(c.entries.Len())
	return removed
}

func (c *ColorCache) Len() int {
	return c.entries.Len()
}

// onEvict runs inside lru calls made under mu, so it only queues the entry.
func (c *ColorCache) onEvict(txid chainhash.Hash, e *entry) {
	c.pending = append(c.pending, evicted{txid: txid, entry: e})
}

// drain unlinks queued entries and cascades to their dependents. Caller holds mu.
func (c *ColorCache) drain() int {
	removed := 0
	for len(c.pending) > 0 {
		ev := c.pending[0]
		c.pending = c.pending[1:]
		removed++
		c.unlink(ev.txid, ev.entry)
		for child := range c.children[ev.txid] {
			c.entries.Remove(child)
		}
		delete(c.children, ev.txid)
	}
	return removed
}

func (c *ColorCache) link(txid chainhash.Hash, e *entry) {
	if hash, ok := e.tag.BlockHash(); ok {
		set, ok := c.byBlock[hash]
		if !ok {
			set = make(map[chainhash.Hash]struct{})
			c.byBlock[hash] = set
		}
		set[txid] = struct{}{}
	}
	for _, dep := range e.deps {
		set, ok := c.children[dep]
		if !ok {
			set = make(map[chainhash.Hash]struct{})
			c.children[dep] = set
		}
		set[txid] = struct{}{}
	}
}

func (c *ColorCache) unlink(txid chainhash.Hash, e *entry) {
	if hash, ok := e.tag.BlockHash(); ok {
		if set, ok := c.byBlock[hash]; ok {
			delete(set, txid)
			if len(set) == 0 {
				delete(c.byBlock, hash)
			}
		}
	}
	for _, dep := range e.deps {
		if set, ok := c.children[dep]; ok {
			delete(set, txid)
			if len(set) == 0 {
				delete(c.children, dep)
			}
		}
	}
}
