package repository

import (
	"github.com/foashegy/ekram-prices/internal/model"
)

func materialsToModel(doc *customMaterialsDoc) map[string]model.Material {
	out := make(map[string]model.Material, len(doc.Materials))
	for key, ent := range doc.Materials {
		out[key] = model.Material{
			Key:     key,
			Name:    ent.Name,
			NameEn:  ent.NameEn,
			Icon:    ent.Icon,
			Unit:    ent.Unit,
			AddedAt: ent.AddedAt,
		}
	}
	return out
}

func materialsFromModel(materials map[string]model.Material) *customMaterialsDoc {
	doc := &customMaterialsDoc{
		ID:        docCustomMaterials,
		Materials: make(map[string]materialEntity, len(materials)),
	}
	for key, m := range materials {
		doc.Materials[key] = materialEntity{
			Name:    m.Name,
			NameEn:  m.NameEn,
			Icon:    m.Icon,
			Unit:    m.Unit,
			AddedAt: m.AddedAt,
		}
	}
	return doc
}

func pricesToModel(doc *currentPricesDoc) map[string]model.PriceRecord {
	out := make(map[string]model.PriceRecord, len(doc.Prices))
	for key, ent := range doc.Prices {
		out[key] = model.PriceRecord{
			Price:     ent.Price,
			PrevPrice: ent.PrevPrice,
			Supplier:  ent.Supplier,
			UpdatedBy: ent.UpdatedBy,
			UpdatedAt: ent.UpdatedAt,
		}
	}
	return out
}

func pricesFromModel(prices map[string]model.PriceRecord) *currentPricesDoc {
	doc := &currentPricesDoc{
		ID:     docCurrentPrices,
		Prices: make(map[string]priceEntity, len(prices)),
	}
	for key, rec := range prices {
		doc.Prices[key] = priceEntity{
			Price:     rec.Price,
			PrevPrice: rec.PrevPrice,
			Supplier:  rec.Supplier,
			UpdatedBy: rec.UpdatedBy,
			UpdatedAt: rec.UpdatedAt,
		}
	}
	return doc
}

func historyToModel(doc *priceHistoryDoc) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(doc.Entries))
	for _, ent := range doc.Entries {
		out = append(out, model.HistoryEntry{
			ID:           ent.ID,
			MaterialKey:  ent.MaterialKey,
			MaterialName: ent.MaterialName,
			Price:        ent.Price,
			PrevPrice:    ent.PrevPrice,
			Change:       ent.Change,
			Dir:          model.Direction(ent.Dir),
			Supplier:     ent.Supplier,
			UpdatedBy:    ent.UpdatedBy,
			Time:         ent.Time,
		})
	}
	return out
}

func historyFromModel(entries []model.HistoryEntry) *priceHistoryDoc {
	doc := &priceHistoryDoc{
		ID:      docPriceHistory,
		Entries: make([]historyEntity, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, historyEntity{
			ID:           e.ID,
			MaterialKey:  e.MaterialKey,
			MaterialName: e.MaterialName,
			Price:        e.Price,
			PrevPrice:    e.PrevPrice,
			Change:       e.Change,
			Dir:          string(e.Dir),
			Supplier:     e.Supplier,
			UpdatedBy:    e.UpdatedBy,
			Time:         e.Time,
		})
	}
	return doc
}
