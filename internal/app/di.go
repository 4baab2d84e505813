package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/foashegy/ekram-prices/internal/config"
	repository "github.com/foashegy/ekram-prices/internal/repository/board"
	materialsvc "github.com/foashegy/ekram-prices/internal/service/material"
	pricesvc "github.com/foashegy/ekram-prices/internal/service/price"
	thttp "github.com/foashegy/ekram-prices/internal/transport/http/board/v1"
	"github.com/foashegy/ekram-prices/platform/closer"
)

type BoardRepository interface {
	materialsvc.BoardRepository
	pricesvc.BoardRepository
}

type MaterialService interface {
	pricesvc.MaterialRegistry
	thttp.MaterialService
}

type BoardHandler interface {
	GetPrices(w http.ResponseWriter, r *http.Request)
	UpdatePrice(w http.ResponseWriter, r *http.Request)
	AddMaterial(w http.ResponseWriter, r *http.Request)
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection

	repository      BoardRepository
	materialService MaterialService
	priceService    thttp.PriceService

	handler BoardHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) BoardCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.BoardCollection())
	}

	return d.collection
}

func (d *di) BoardRepository(ctx context.Context) BoardRepository {
	if d.repository == nil {
		d.repository = repository.NewBoardRepository(d.BoardCollection(ctx))
	}

	return d.repository
}

func (d *di) MaterialService(ctx context.Context) MaterialService {
	if d.materialService == nil {
		d.materialService = materialsvc.NewMaterialService(
			d.BoardRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.materialService
}

func (d *di) PriceService(ctx context.Context) thttp.PriceService {
	if d.priceService == nil {
		d.priceService = pricesvc.NewPriceService(
			d.BoardRepository(ctx),
			d.MaterialService(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.priceService
}

func (d *di) BoardHandler(ctx context.Context) BoardHandler {
	if d.handler == nil {
		d.handler = thttp.NewBoardHandler(
			d.PriceService(ctx),
			d.MaterialService(ctx),
			config.C().Auth.APIKey(),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
