package repository

import (
	"time"
)

// Document IDs inside the board collection. Each document is read and
// rewritten whole; there are no partial updates.
const (
	docCustomMaterials = "custom-materials"
	docCurrentPrices   = "current-prices"
	docPriceHistory    = "price-history"
)

type materialEntity struct {
	Name    string    `bson:"name"`
	NameEn  string    `bson:"name_en"`
	Icon    string    `bson:"icon"`
	Unit    string    `bson:"unit"`
	AddedAt time.Time `bson:"added_at"`
}

type customMaterialsDoc struct {
	ID        string                    `bson:"_id"`
	Materials map[string]materialEntity `bson:"materials"`
}

type priceEntity struct {
	Price     float64   `bson:"price"`
	PrevPrice float64   `bson:"prev_price"`
	Supplier  string    `bson:"supplier,omitempty"`
	UpdatedBy string    `bson:"updated_by"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type currentPricesDoc struct {
	ID     string                 `bson:"_id"`
	Prices map[string]priceEntity `bson:"prices"`
}

type historyEntity struct {
	ID           string    `bson:"id"`
	MaterialKey  string    `bson:"material_key"`
	MaterialName string    `bson:"material_name"`
	Price        float64   `bson:"price"`
	PrevPrice    float64   `bson:"prev_price"`
	Change       string    `bson:"change"`
	Dir          string    `bson:"dir"`
	Supplier     string    `bson:"supplier,omitempty"`
	UpdatedBy    string    `bson:"updated_by"`
	Time         time.Time `bson:"time"`
}

type priceHistoryDoc struct {
	ID      string          `bson:"_id"`
	Entries []historyEntity `bson:"entries"`
}
