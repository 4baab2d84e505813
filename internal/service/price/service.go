package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foashegy/ekram-prices/internal/model"
	"github.com/foashegy/ekram-prices/platform/logger"
)

const (
	historyLimit     = 100
	defaultUpdatedBy = "API"
)

type BoardRepository interface {
	CurrentPrices(ctx context.Context) (map[string]model.PriceRecord, error)
	SaveCurrentPrices(ctx context.Context, prices map[string]model.PriceRecord) error
	History(ctx context.Context) ([]model.HistoryEntry, error)
	SaveHistory(ctx context.Context, entries []model.HistoryEntry) error
}

type MaterialRegistry interface {
	ResolveAlias(token string) string
	IsValid(ctx context.Context, key string) (bool, error)
	DisplayName(ctx context.Context, key string) string
	ValidKeys(ctx context.Context) ([]string, error)
}

type service struct {
	repo           BoardRepository
	materials      MaterialRegistry
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPriceService(
	repo BoardRepository,
	materials MaterialRegistry,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		materials:      materials,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Update validates a price report, recomputes the change against the
// stored record and rewrites both the current-prices and price-history
// documents. The two writes are sequential, not atomic as a pair.
func (s *service) Update(
	ctx context.Context,
	params model.UpdatePriceParams,
) (*model.UpdatePriceResult, error) {
	const op = "price.service.Update"

	key := s.materials.ResolveAlias(strings.TrimSpace(params.Material))
	log := logger.With(
		logger.String("material_key", key),
		logger.Float64("price", params.Price),
	)

	if key == "" {
		log.Error(ctx, "validation: empty material")
		return nil, fmt.Errorf("%s: %w", op, model.ErrMaterialRequired)
	}

	if math.IsNaN(params.Price) || math.IsInf(params.Price, 0) || params.Price <= 0 {
		log.Error(ctx, "validation: price must be a finite number > 0")
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidPrice)
	}

	valid, err := s.materials.IsValid(ctx, key)
	if err != nil {
		log.Error(ctx, "registry validity check", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !valid {
		validKeys, err := s.materials.ValidKeys(ctx)
		if err != nil {
			log.Error(ctx, "registry valid keys", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Warn(ctx, "unknown material rejected")
		return nil, fmt.Errorf("%s: %w", op, &model.UnknownMaterialError{
			Material:  key,
			ValidKeys: validKeys,
		})
	}

	prices, err := s.loadPrices(ctx)
	if err != nil {
		log.Error(ctx, "repository current prices", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// First report of a material implies zero change.
	prev := params.Price
	prevSupplier := ""
	if rec, ok := prices[key]; ok {
		prev = rec.Price
		prevSupplier = rec.Supplier
	}

	change, dir := computeChange(prev, params.Price)

	supplier := params.Supplier
	if supplier == "" {
		supplier = prevSupplier
	}
	updatedBy := params.User
	if updatedBy == "" {
		updatedBy = defaultUpdatedBy
	}

	now := time.Now()
	prices[key] = model.PriceRecord{
		Price:     params.Price,
		PrevPrice: prev,
		Supplier:  supplier,
		UpdatedBy: updatedBy,
		UpdatedAt: now,
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.SaveCurrentPrices(wdbCtx, prices); err != nil {
		log.Error(ctx, "save current prices", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name := s.materials.DisplayName(ctx, key)

	if err := s.appendHistory(ctx, model.HistoryEntry{
		ID:           uuid.NewString(),
		MaterialKey:  key,
		MaterialName: name,
		Price:        params.Price,
		PrevPrice:    prev,
		Change:       change,
		Dir:          dir,
		Supplier:     supplier,
		UpdatedBy:    updatedBy,
		Time:         now,
	}); err != nil {
		// The current-prices write already landed; there is no rollback.
		log.Error(ctx, "append history", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "price updated",
		logger.String("dir", string(dir)),
		logger.String("change", change),
	)

	return &model.UpdatePriceResult{
		Material:     key,
		MaterialName: name,
		Price:        params.Price,
		PrevPrice:    prev,
		Change:       change,
		Dir:          dir,
	}, nil
}

// Snapshot returns current prices and history, substituting empty defaults
// for every storage failure. It never returns an error.
func (s *service) Snapshot(ctx context.Context) *model.Snapshot {
	out := &model.Snapshot{
		Prices:  map[string]model.PriceRecord{},
		History: []model.HistoryEntry{},
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	if prices, err := s.repo.CurrentPrices(rdbCtx); err == nil {
		out.Prices = prices
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Warn(ctx, "current prices unavailable, serving empty",
			logger.ErrorF(err))
	}

	hCtx, hCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer hCancel()

	if history, err := s.repo.History(hCtx); err == nil {
		out.History = history
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Warn(ctx, "price history unavailable, serving empty",
			logger.ErrorF(err))
	}

	return out
}

func (s *service) loadPrices(ctx context.Context) (map[string]model.PriceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	prices, err := s.repo.CurrentPrices(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return map[string]model.PriceRecord{}, nil
		}
		return nil, err
	}
	return prices, nil
}

func (s *service) appendHistory(ctx context.Context, entry model.HistoryEntry) error {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	history, err := s.repo.History(rdbCtx)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	history = append([]model.HistoryEntry{entry}, history...)
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	return s.repo.SaveHistory(wdbCtx, history)
}

// computeChange renders the percentage move from prev to next with one
// decimal place and an explicit plus sign on the way up. A zero prev
// guards the division and renders as "0".
func computeChange(prev, next float64) (string, model.Direction) {
	dir := model.DirStable
	switch {
	case next > prev:
		dir = model.DirUp
	case next < prev:
		dir = model.DirDown
	}

	if prev == 0 {
		return "0", dir
	}

	pct := math.Round((next-prev)/prev*1000) / 10
	change := strconv.FormatFloat(pct, 'f', 1, 64) + "%"
	if dir == model.DirUp {
		change = "+" + change
	}

	return change, dir
}
