package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/foashegy/ekram-prices/internal/catalog"
	"github.com/foashegy/ekram-prices/internal/model"
	"github.com/foashegy/ekram-prices/platform/logger"
)

type BoardRepository interface {
	CustomMaterials(ctx context.Context) (map[string]model.Material, error)
	SaveCustomMaterials(ctx context.Context, materials map[string]model.Material) error
}

type service struct {
	repo           BoardRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewMaterialService(
	repo BoardRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// ResolveAlias maps short bot codes onto canonical keys. Unknown tokens
// pass through unchanged.
func (s *service) ResolveAlias(token string) string {
	return catalog.ResolveAlias(token)
}

// IsValid reports whether key belongs to the built-in table or the custom
// catalog. The custom catalog is read from the store on every call.
func (s *service) IsValid(ctx context.Context, key string) (bool, error) {
	const op = "material.service.IsValid"

	if _, ok := catalog.LookupBuiltIn(key); ok {
		return true, nil
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	_, ok := custom[key]
	return ok, nil
}

// DisplayName prefers the built-in Arabic name, then the custom catalog
// name, and falls back to the raw key. Storage failures degrade to the key
// rather than failing the caller.
func (s *service) DisplayName(ctx context.Context, key string) string {
	if b, ok := catalog.LookupBuiltIn(key); ok {
		return b.Name
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		logger.Warn(ctx, "custom catalog unavailable, using raw key",
			logger.String("material_key", key),
			logger.ErrorF(err),
		)
		return key
	}

	if m, ok := custom[key]; ok {
		return m.Name
	}
	return key
}

// ValidKeys returns every currently accepted material key, sorted.
func (s *service) ValidKeys(ctx context.Context) ([]string, error) {
	const op = "material.service.ValidKeys"

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	keys := append(catalog.BuiltInKeys(), lo.Keys(custom)...)
	sort.Strings(keys)
	return keys, nil
}

// AddMaterial normalizes the key, fills the defaults and merges the entry
// into the custom-materials document, overwriting any entry with the same
// key. The whole document is rewritten.
func (s *service) AddMaterial(
	ctx context.Context,
	params model.AddMaterialParams,
) (*model.AddMaterialResult, error) {
	const op = "material.service.AddMaterial"
	log := logger.With(
		logger.String("material_key", params.Key),
	)

	if strings.TrimSpace(params.Key) == "" || strings.TrimSpace(params.NameAr) == "" {
		log.Error(ctx, "validation: missing key or nameAr")
		return nil, fmt.Errorf("%s: %w", op, model.ErrMissingNameOrKey)
	}

	key := catalog.NormalizeKey(params.Key)

	entry := model.Material{
		Key:     key,
		Name:    params.NameAr,
		NameEn:  params.NameEn,
		Icon:    params.Icon,
		Unit:    params.Unit,
		AddedAt: time.Now(),
	}
	if entry.NameEn == "" {
		entry.NameEn = key
	}
	if entry.Icon == "" {
		entry.Icon = catalog.DefaultIcon
	}
	if entry.Unit == "" {
		entry.Unit = catalog.DefaultUnit
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		log.Error(ctx, "load custom catalog", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	custom[key] = entry

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.SaveCustomMaterials(wdbCtx, custom); err != nil {
		log.Error(ctx, "save custom catalog", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.AddMaterialResult{Key: key, Name: entry.Name}, nil
}

func (s *service) loadCustom(ctx context.Context) (map[string]model.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	custom, err := s.repo.CustomMaterials(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return map[string]model.Material{}, nil
		}
		return nil, err
	}
	return custom, nil
}
