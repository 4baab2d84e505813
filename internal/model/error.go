package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("validation error")   // 400
	ErrUnauthorized    = errors.New("unauthorized")       // 401
	ErrUnknownMaterial = errors.New("unknown material")   // 400
	ErrNotFound        = errors.New("document not found") // internal, never surfaces

	ErrMaterialRequired = fmt.Errorf("material required: %w", ErrValidation)
	ErrInvalidPrice     = fmt.Errorf("invalid price: %w", ErrValidation)
	ErrMissingNameOrKey = fmt.Errorf("key and nameAr are required: %w", ErrValidation)
)

// UnknownMaterialError carries the full list of currently valid material
// keys so callers can show what is accepted.
type UnknownMaterialError struct {
	Material  string
	ValidKeys []string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q, valid: %s",
		e.Material, strings.Join(e.ValidKeys, ", "))
}

func (e *UnknownMaterialError) Is(target error) bool {
	return target == ErrUnknownMaterial
}
