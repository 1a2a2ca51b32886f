package indexer

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// dependencyLevels groups tx positions so every tx lands in a later level than the
// in-block txs it spends. Canonical tx ordering puts no such guarantee on block order.
func dependencyLevels(txs []*btcutil.Tx) [][]int {
	pos := make(map[chainhash.Hash]int, len(txs))
	for i, tx := range txs {
		pos[*tx.Hash()] = i
	}

	const unvisited, visiting = -1, -2
	level := make([]int, len(txs))
	for i := range level {
		level[i] = unvisited
	}

	var visit func(i int) int
	visit = func(i int) int {
		switch level[i] {
		case visiting:
			// Valid blocks have no cycles.
			return 0
		case unvisited:
		default:
			return level[i]
		}
		level[i] = visiting
		l := 0
		if i > 0 {
			for _, in := range txs[i].MsgTx().TxIn {
				if p, ok := pos[in.PreviousOutPoint.Hash]; ok && p != i {
					l = max(l, visit(p)+1)
				}
			}
		}
		level[i] = l
		return l
	}

	var levels [][]int
	for i := range txs {
		l := visit(i)
		for len(levels) <= l {
			levels = append(levels, nil)
		}
		levels[l] = append(levels[l], i)
	}
	return levels
}
