package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/payload"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrAncestorDepth is returned when coloring an ancestor chain exceeds the configured depth.
var ErrAncestorDepth = errors.New("ancestor chain too deep")

// resolverBatchSize controls how many txids are fetched in one repository call.
// It is a var to allow overriding in tests.
var resolverBatchSize = 1000

const (
	sourceCache      = "cache"
	sourceRepository = "repository"
	sourceNode       = "node"
)

// Resolver resolves the colors of spent outputs from the cache, the repository and finally
// the node, coloring unknown ancestors on the way.
type Resolver struct {
	cache    *ColorCache
	repo     Repository
	txs      TxSource
	oracle   OutputOracle
	colorer  Colorer
	coin     model.Coin
	network  model.Network
	maxDepth int
	metrics  Metrics
	logger   *zap.Logger
}

// NewResolver constructs a Resolver for a specific network.
func NewResolver(
	cache *ColorCache,
	repo Repository,
	txs TxSource,
	oracle OutputOracle,
	colorer Colorer,
	coin model.Coin,
	network model.Network,
	maxDepth int,
	metrics Metrics,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		cache:    cache,
		repo:     repo,
		txs:      txs,
		oracle:   oracle,
		colorer:  colorer,
		coin:     coin,
		network:  network,
		maxDepth: maxDepth,
		metrics:  metrics,
		logger:   logger.Named("resolver"),
	}
}

// Cache exposes the cache the resolver reads through.
func (r *Resolver) Cache() *ColorCache {
	return r.cache
}

// Resolve returns the pre-resolved inputs of tx.
func (r *Resolver) Resolve(ctx context.Context, tx *wire.MsgTx) (model.ResolvedInputs, error) {
	return r.resolve(ctx, tx, 0)
}

// Tx returns the colored form of a transaction, coloring it from the node when it is not cached.
func (r *Resolver) Tx(ctx context.Context, txid chainhash.Hash) (*model.ColoredTx, error) {
	if colored, _, ok := r.cache.Get(txid); ok {
		r.metrics.ObserveLookup(sourceCache, true)
		return colored, nil
	}
	r.metrics.ObserveLookup(sourceCache, false)

	tx, blockHash, err := r.txs.FetchTx(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("fetch tx %s: %w", txid, err)
	}
	return r.color(ctx, tx, blockHash, 0)
}

// Deps lists the distinct txids spent by tx.
func Deps(tx *wire.MsgTx) []chainhash.Hash {
	if isCoinbase(tx) {
		return nil
	}
	return lo.Uniq(lo.Map(tx.TxIn, func(in *wire.TxIn, _ int) chainhash.Hash {
		return in.PreviousOutPoint.Hash
	}))
}

func isCoinbase(tx *wire.MsgTx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prev := tx.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == chainhash.Hash{}
}

func (r *Resolver) resolve(ctx context.Context, tx *wire.MsgTx, depth int) (model.ResolvedInputs, error) {
	inputs := model.ResolvedInputs{Spent: make([]model.SpentOutput, len(tx.TxIn))}
	deps := Deps(tx)
	if len(deps) == 0 {
		return inputs, nil
	}

	colors, err := r.outputColors(ctx, deps, depth)
	if err != nil {
		return model.ResolvedInputs{}, err
	}
	for i, in := range tx.TxIn {
		inputs.Spent[i].Color = colors[in.PreviousOutPoint.Hash][in.PreviousOutPoint.Index]
	}

	txid := tx.TxHash()
	decoded := payload.Decode(txid, tx.TxOut)
	if !isVaultMint(decoded) {
		return inputs, nil
	}
	for i, in := range tx.TxIn {
		script, confirmed, err := r.oracle.SpentOutput(ctx, in.PreviousOutPoint)
		if err != nil {
			return model.ResolvedInputs{}, fmt.Errorf("spent output %s: %w", in.PreviousOutPoint, err)
		}
		inputs.Spent[i].Script = script
		inputs.Spent[i].Confirmed = confirmed
	}
	tokenID := decoded.Sections[0].TokenID
	hash, err := r.vaultScripthash(ctx, tokenID)
	if err != nil {
		return model.ResolvedInputs{}, err
	}
	if len(hash) > 0 {
		inputs.VaultScripthashes = map[model.TokenID][]byte{tokenID: hash}
	}
	return inputs, nil
}

func isVaultMint(decoded model.Decoded) bool {
	return decoded.Kind == model.DecodedLegacy &&
		len(decoded.Sections) == 1 &&
		decoded.Sections[0].TxKind == model.TxKindMint &&
		decoded.Sections[0].TokenType == model.TypeSLPMintVault
}

type outputMap map[chainhash.Hash]map[uint32]*model.ColoredValue

func (r *Resolver) outputColors(ctx context.Context, txids []chainhash.Hash, depth int) (outputMap, error) {
	result := make(outputMap, len(txids))
	missing := make([]chainhash.Hash, 0, len(txids))
	for _, txid := range txids {
		e, ok := r.cache.lookup(txid)
		r.metrics.ObserveLookup(sourceCache, ok)
		if !ok {
			missing = append(missing, txid)
			continue
		}
		result[txid] = outputsOf(e.tx)
	}
	if len(missing) == 0 {
		return result, nil
	}

	missing, err := r.fromRepository(ctx, missing, result)
	if err != nil {
		return nil, err
	}

	for _, txid := range missing {
		outputs, err := r.colorAncestor(ctx, txid, depth+1)
		if err != nil {
			return nil, err
		}
		result[txid] = outputs
	}
	return result, nil
}

// fromRepository fills result with persisted colors and returns the txids still unknown.
// Persisted colors are cached under their block.
func (r *Resolver) fromRepository(ctx context.Context, txids []chainhash.Hash, result outputMap) ([]chainhash.Hash, error) {
	size := resolverBatchSize
	if size <= 0 {
		size = 1000
	}
	var missing []chainhash.Hash
	blocks := make(map[uint64]*chainhash.Hash)
	for _, chunk := range lo.Chunk(txids, size) {
		keys := lo.Map(chunk, func(h chainhash.Hash, _ int) string { return h.String() })
		rows, err := r.repo.ColoredOutputsByTxIDs(ctx, r.coin, r.network, keys)
		if err != nil {
			return nil, fmt.Errorf("query colored outputs: %w", err)
		}
		for i, txid := range chunk {
			txRows, ok := rows[keys[i]]
			r.metrics.ObserveLookup(sourceRepository, ok)
			if !ok {
				missing = append(missing, txid)
				continue
			}
			outputs := make(map[uint32]*model.ColoredValue, len(txRows))
			for _, row := range txRows {
				v, err := row.Value()
				if err != nil {
					return nil, err
				}
				outputs[row.Index] = v
			}
			result[txid] = outputs
			if len(txRows) == 0 {
				continue
			}
			block, err := r.blockAt(ctx, txRows[0].BlockHeight, blocks)
			if err != nil {
				return nil, err
			}
			if block != nil {
				r.cache.PutOutputs(txid, outputSlice(outputs), Block(*block))
			}
		}
	}
	return missing, nil
}

// blockAt returns the stored hash of height, nil when the height was rewound meanwhile.
func (r *Resolver) blockAt(ctx context.Context, height uint64, known map[uint64]*chainhash.Hash) (*chainhash.Hash, error) {
	if hash, ok := known[height]; ok {
		return hash, nil
	}
	encoded, ok, err := r.repo.TokenBlockHash(ctx, r.coin, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query block hash at height %d: %w", height, err)
	}
	var hash *chainhash.Hash
	if ok {
		if hash, err = chainhash.NewHashFromStr(encoded); err != nil {
			return nil, fmt.Errorf("parse block hash at height %d: %w", height, err)
		}
	}
	known[height] = hash
	return hash, nil
}

// colorAncestor colors a tx known only to the node. Txs without a token payload have no
// colored outputs and are not cached.
func (r *Resolver) colorAncestor(ctx context.Context, txid chainhash.Hash, depth int) (map[uint32]*model.ColoredValue, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrAncestorDepth, txid, depth)
	}
	tx, blockHash, err := r.txs.FetchTx(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("fetch ancestor %s: %w", txid, err)
	}
	r.metrics.ObserveLookup(sourceNode, true)

	decoded := payload.Decode(txid, tx.TxOut)
	if decoded.Kind != model.DecodedLegacy && decoded.Kind != model.DecodedMultiSection {
		return nil, nil
	}
	colored, err := r.color(ctx, tx, blockHash, depth)
	if err != nil {
		return nil, err
	}
	return outputsOf(colored), nil
}

func (r *Resolver) color(ctx context.Context, tx *wire.MsgTx, blockHash string, depth int) (*model.ColoredTx, error) {
	inputs, err := r.resolve(ctx, tx, depth)
	if err != nil {
		return nil, err
	}
	colored := r.colorer.ColorTx(ctx, tx, inputs)

	tag := Mempool()
	if blockHash != "" {
		hash, err := chainhash.NewHashFromStr(blockHash)
		if err != nil {
			return nil, fmt.Errorf("parse block hash %q: %w", blockHash, err)
		}
		tag = Block(*hash)
	}
	r.cache.Put(colored, tag, Deps(tx))
	r.logger.Debug("colored ancestor",
		zap.Stringer("txid", colored.TxID),
		zap.Stringer("tag", tag),
		zap.Int("depth", depth),
	)
	return colored, nil
}

func (r *Resolver) vaultScripthash(ctx context.Context, tokenID model.TokenID) ([]byte, error) {
	genesisTxID := chainhash.Hash(tokenID)
	if colored, _, ok := r.cache.Get(genesisTxID); ok {
		for _, entry := range colored.Entries {
			if entry.TokenID == tokenID && entry.TxKind == model.TxKindGenesis && entry.GenesisInfo != nil {
				return entry.GenesisInfo.VaultScripthash, nil
			}
		}
	}

	hashes, err := r.repo.VaultScripthashes(ctx, r.coin, r.network, []string{tokenID.String()})
	if err != nil {
		return nil, fmt.Errorf("query vault scripthash of %s: %w", tokenID, err)
	}
	if encoded, ok := hashes[tokenID.String()]; ok {
		hash, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode vault scripthash of %s: %w", tokenID, err)
		}
		return hash, nil
	}

	tx, _, err := r.txs.FetchTx(ctx, genesisTxID)
	if err != nil {
		return nil, fmt.Errorf("fetch genesis %s: %w", tokenID, err)
	}
	decoded := payload.Decode(genesisTxID, tx.TxOut)
	for _, section := range decoded.Sections {
		if section.TxKind == model.TxKindGenesis && section.TokenType == model.TypeSLPMintVault && section.GenesisInfo != nil {
			return section.GenesisInfo.VaultScripthash, nil
		}
	}
	return nil, nil
}

func outputSlice(outputs map[uint32]*model.ColoredValue) []*model.ColoredValue {
	size := 0
	for idx := range outputs {
		if int(idx) >= size {
			size = int(idx) + 1
		}
	}
	slice := make([]*model.ColoredValue, size)
	for idx, v := range outputs {
		slice[idx] = v
	}
	return slice
}

func outputsOf(tx *model.ColoredTx) map[uint32]*model.ColoredValue {
	outputs := make(map[uint32]*model.ColoredValue)
	for i, v := range tx.Outputs {
		if v != nil {
			outputs[uint32(i)] = v
		}
	}
	return outputs
}
