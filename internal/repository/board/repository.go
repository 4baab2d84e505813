package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/foashegy/ekram-prices/internal/model"
)

// repository stores the three board documents in one collection, each
// under a well-known _id. Reads fetch a whole document and writes replace
// it whole; a missing document surfaces as model.ErrNotFound.
//
// There is no version token on the documents, so concurrent
// read-modify-write sequences can lose updates. That limitation is part
// of the service contract.
type repository struct {
	coll *mongo.Collection
}

func NewBoardRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) CustomMaterials(ctx context.Context) (map[string]model.Material, error) {
	const op = "repository.CustomMaterials"

	var doc customMaterialsDoc
	if err := r.findDoc(ctx, docCustomMaterials, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return materialsToModel(&doc), nil
}

func (r *repository) SaveCustomMaterials(ctx context.Context, materials map[string]model.Material) error {
	const op = "repository.SaveCustomMaterials"

	if err := r.replaceDoc(ctx, docCustomMaterials, materialsFromModel(materials)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CurrentPrices(ctx context.Context) (map[string]model.PriceRecord, error) {
	const op = "repository.CurrentPrices"

	var doc currentPricesDoc
	if err := r.findDoc(ctx, docCurrentPrices, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pricesToModel(&doc), nil
}

func (r *repository) SaveCurrentPrices(ctx context.Context, prices map[string]model.PriceRecord) error {
	const op = "repository.SaveCurrentPrices"

	if err := r.replaceDoc(ctx, docCurrentPrices, pricesFromModel(prices)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) History(ctx context.Context) ([]model.HistoryEntry, error) {
	const op = "repository.History"

	var doc priceHistoryDoc
	if err := r.findDoc(ctx, docPriceHistory, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return historyToModel(&doc), nil
}

func (r *repository) SaveHistory(ctx context.Context, entries []model.HistoryEntry) error {
	const op = "repository.SaveHistory"

	if err := r.replaceDoc(ctx, docPriceHistory, historyFromModel(entries)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) findDoc(ctx context.Context, id string, out any) error {
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *repository) replaceDoc(ctx context.Context, id string, doc any) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
