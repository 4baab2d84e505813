package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/foashegy/ekram-prices/internal/model"
)

type updatePriceRequest struct {
	Material string `json:"material"`
	Price    any    `json:"price"` // number or numeric string
	Supplier string `json:"supplier"`
	User     string `json:"user"`
}

type addMaterialRequest struct {
	Key    string `json:"key"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Icon   string `json:"icon"`
	Unit   string `json:"unit"`
}

type updatePriceResponse struct {
	Success      bool    `json:"success"`
	Material     string  `json:"material"`
	MaterialName string  `json:"materialName"`
	Price        float64 `json:"price"`
	PrevPrice    float64 `json:"prevPrice"`
	Change       string  `json:"change"`
	Dir          string  `json:"dir"`
}

type addMaterialResponse struct {
	Success  bool   `json:"success"`
	Material string `json:"material"`
	Name     string `json:"name"`
}

type priceRecordDTO struct {
	Price     float64   `json:"price"`
	PrevPrice float64   `json:"prevPrice"`
	Supplier  string    `json:"supplier"`
	UpdatedBy string    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type historyEntryDTO struct {
	ID           string    `json:"id"`
	MaterialKey  string    `json:"materialKey"`
	MaterialName string    `json:"materialName"`
	Price        float64   `json:"price"`
	PrevPrice    float64   `json:"prevPrice"`
	ChangePct    string    `json:"changePct"`
	Dir          string    `json:"dir"`
	Supplier     string    `json:"supplier"`
	UpdatedBy    string    `json:"updatedBy"`
	Time         time.Time `json:"time"`
}

type snapshotResponse struct {
	Prices  map[string]priceRecordDTO `json:"prices"`
	History []historyEntryDTO         `json:"history"`
}

type errorResponse struct {
	Error          string   `json:"error"`
	Details        string   `json:"details,omitempty"`
	ValidMaterials []string `json:"validMaterials,omitempty"`
}

func updateResultToResponse(res *model.UpdatePriceResult) updatePriceResponse {
	return updatePriceResponse{
		Success:      true,
		Material:     res.Material,
		MaterialName: res.MaterialName,
		Price:        res.Price,
		PrevPrice:    res.PrevPrice,
		Change:       res.Change,
		Dir:          string(res.Dir),
	}
}

func addResultToResponse(res *model.AddMaterialResult) addMaterialResponse {
	return addMaterialResponse{
		Success:  true,
		Material: res.Key,
		Name:     res.Name,
	}
}

func snapshotToResponse(snap *model.Snapshot) snapshotResponse {
	out := snapshotResponse{
		Prices: make(map[string]priceRecordDTO, len(snap.Prices)),
		History: lo.Map(snap.History, func(e model.HistoryEntry, _ int) historyEntryDTO {
			return historyEntryDTO{
				ID:           e.ID,
				MaterialKey:  e.MaterialKey,
				MaterialName: e.MaterialName,
				Price:        e.Price,
				PrevPrice:    e.PrevPrice,
				ChangePct:    e.Change,
				Dir:          string(e.Dir),
				Supplier:     e.Supplier,
				UpdatedBy:    e.UpdatedBy,
				Time:         e.Time,
			}
		}),
	}

	for key, rec := range snap.Prices {
		out.Prices[key] = priceRecordDTO{
			Price:     rec.Price,
			PrevPrice: rec.PrevPrice,
			Supplier:  rec.Supplier,
			UpdatedBy: rec.UpdatedBy,
			UpdatedAt: rec.UpdatedAt,
		}
	}

	return out
}
