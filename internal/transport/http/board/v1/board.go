package http

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/foashegy/ekram-prices/internal/model"
	"github.com/foashegy/ekram-prices/platform/logger"
)

const apiKeyHeader = "x-api-key"

type PriceService interface {
	Update(ctx context.Context, params model.UpdatePriceParams) (*model.UpdatePriceResult, error)
	Snapshot(ctx context.Context) *model.Snapshot
}

type MaterialService interface {
	AddMaterial(ctx context.Context, params model.AddMaterialParams) (*model.AddMaterialResult, error)
}

type handler struct {
	prices    PriceService
	materials MaterialService
	apiKey    string
}

// NewBoardHandler builds the handler set for the three board endpoints.
// An empty apiKey disables the update-endpoint auth check entirely.
func NewBoardHandler(prices PriceService, materials MaterialService, apiKey string) *handler {
	return &handler{prices: prices, materials: materials, apiKey: apiKey}
}

// GetPrices answers the current snapshot and history. It never fails: the
// service substitutes empty defaults for every storage error.
func (h *handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	snap := h.prices.Snapshot(r.Context())
	writeJSON(r.Context(), w, http.StatusOK, snapshotToResponse(snap))
}

func (h *handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.apiKey != "" && r.Header.Get(apiKeyHeader) != h.apiKey {
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	var req updatePriceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.prices.Update(ctx, model.UpdatePriceParams{
		Material: req.Material,
		Price:    coercePrice(req.Price),
		Supplier: req.Supplier,
		User:     req.User,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updateResultToResponse(res))
}

func (h *handler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addMaterialRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.materials.AddMaterial(ctx, model.AddMaterialParams{
		Key:    req.Key,
		NameAr: req.NameAr,
		NameEn: req.NameEn,
		Icon:   req.Icon,
		Unit:   req.Unit,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, addResultToResponse(res))
}

// MethodNotAllowed keeps wrong-verb responses JSON like everything else.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusMethodNotAllowed,
		errorResponse{Error: "method not allowed"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound,
		errorResponse{Error: "not found"})
}

func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(out)
}

// coercePrice accepts the price as a JSON number or a numeric string.
// Anything unparsable becomes NaN, which the service rejects as invalid.
func coercePrice(v any) float64 {
	switch p := v.(type) {
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case float64:
		return p
	default:
		return math.NaN()
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var unknownErr *model.UnknownMaterialError

	switch {
	case errors.Is(err, model.ErrMaterialRequired):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "material required"})
	case errors.Is(err, model.ErrInvalidPrice):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid price"})
	case errors.Is(err, model.ErrMissingNameOrKey):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "key and nameAr are required"})
	case errors.As(err, &unknownErr):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:          "unknown material",
			ValidMaterials: unknownErr.ValidKeys,
		})
	case errors.Is(err, model.ErrUnauthorized):
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	default:
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Error:   "internal error",
			Details: err.Error(),
		})
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "write response", logger.ErrorF(err))
	}
}
