package model

import "time"

type Direction string

const (
	DirUp     Direction = "up"
	DirDown   Direction = "down"
	DirStable Direction = "stable"
)

// PriceRecord is the latest known price for a single material. PrevPrice
// equals the price that was stored immediately before this record, or the
// price itself when the material had never been reported.
type PriceRecord struct {
	Price     float64
	PrevPrice float64
	Supplier  string
	UpdatedBy string
	UpdatedAt time.Time
}

// HistoryEntry is one immutable price-change event. Entries are only ever
// prepended and age out past position 100.
type HistoryEntry struct {
	ID           string
	MaterialKey  string
	MaterialName string
	Price        float64
	PrevPrice    float64
	Change       string
	Dir          Direction
	Supplier     string
	UpdatedBy    string
	Time         time.Time
}

type UpdatePriceParams struct {
	Material string
	Price    float64
	Supplier string
	User     string
}

type UpdatePriceResult struct {
	Material     string
	MaterialName string
	Price        float64
	PrevPrice    float64
	Change       string
	Dir          Direction
}

// Snapshot is the full read-side view: current prices plus the bounded
// history log, newest first.
type Snapshot struct {
	Prices  map[string]PriceRecord
	History []HistoryEntry
}
