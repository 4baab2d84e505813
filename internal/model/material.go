package model

import "time"

// Material is a custom catalog entry, created once via the add-material
// endpoint and never updated or deleted afterwards.
type Material struct {
	Key     string
	Name    string // Arabic display name
	NameEn  string
	Icon    string
	Unit    string
	AddedAt time.Time
}

type AddMaterialParams struct {
	Key    string
	NameAr string
	NameEn string
	Icon   string
	Unit   string
}

type AddMaterialResult struct {
	Key  string
	Name string
}
