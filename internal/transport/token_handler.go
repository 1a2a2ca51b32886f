// Package transport exposes the token engine over HTTP and gRPC.
package transport

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/gate"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxRequestBytes = 4 << 20

// TokenHandler serves broadcast validation and colored tx lookups.
type TokenHandler struct {
	validator BroadcastValidator
	resolver  TxResolver
	logger    *zap.Logger
}

func NewTokenHandler(validator BroadcastValidator, resolver TxResolver, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{validator: validator, resolver: resolver, logger: logger.Named("tokenHandler")}
}

// Register mounts the token routes on mux.
func (h *TokenHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodPost, "/v1/tokens/validate", h.validate); err != nil {
		return fmt.Errorf("register validate route: %w", err)
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/tokens/tx/{txid}", h.tx); err != nil {
		return fmt.Errorf("register tx route: %w", err)
	}
	return nil
}

type validateRequest struct {
	RawTx string `json:"raw_tx"`
}

type errorResponse struct {
	Error string         `json:"error"`
	Tx    *coloredTxJSON `json:"tx,omitempty"`
}

func (h *TokenHandler) validate(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req validateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	raw, err := hex.DecodeString(req.RawTx)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("raw_tx is not hex: %w", err))
		return
	}
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("raw_tx is not a transaction: %w", err))
		return
	}

	colored, err := h.validator.ValidateBroadcast(r.Context(), &tx)
	var rejected *gate.BroadcastError
	switch {
	case errors.As(err, &rejected):
		body := newColoredTxJSON(rejected.Tx)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: rejected.Error(), Tx: &body})
	case err != nil:
		h.logger.Error("validate broadcast failed", zap.Stringer("txid", tx.TxHash()), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err)
	default:
		h.writeJSON(w, http.StatusOK, newColoredTxJSON(colored))
	}
}

func (h *TokenHandler) tx(w http.ResponseWriter, r *http.Request, params map[string]string) {
	txid, err := chainhash.NewHashFromStr(params["txid"])
	if err != nil || len(params["txid"]) != chainhash.MaxHashStringSize {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid txid %q", params["txid"]))
		return
	}
	colored, err := h.resolver.Tx(r.Context(), *txid)
	if err != nil {
		h.logger.Error("resolve tx failed", zap.Stringer("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newColoredTxJSON(colored))
}

func (h *TokenHandler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *TokenHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func formatAmount(v model.Amount) string {
	return strconv.FormatUint(v, 10)
}
