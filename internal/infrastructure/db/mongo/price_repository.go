package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

const pricesCollection = "metal_prices"

// PriceRepository persists metal price records in MongoDB. The collection is
// append-only; the latest record by updated_at is the current quote.
type PriceRepository struct {
	coll *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{coll: db.Collection(pricesCollection)}
}

type mongoPrice struct {
	ID            string  `bson:"_id"`
	GoldPrice     float64 `bson:"gold_price"`
	SilverPrice   float64 `bson:"silver_price"`
	PlatinumPrice float64 `bson:"platinum_price"`
	UpdatedAt     int64   `bson:"updated_at"`
	UpdatedBy     string  `bson:"updated_by"`
}

func (r *PriceRepository) Insert(ctx context.Context, price *domain.MetalPrice) error {
	doc := mongoPrice{
		ID:            price.ID,
		GoldPrice:     price.GoldPrice,
		SilverPrice:   price.SilverPrice,
		PlatinumPrice: price.PlatinumPrice,
		UpdatedAt:     price.UpdatedAt.Unix(),
		UpdatedBy:     price.UpdatedBy,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

func (r *PriceRepository) FindLatest(ctx context.Context) (*domain.MetalPrice, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	var mp mongoPrice
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ports.ErrNoPriceRecorded
		}
		return nil, fmt.Errorf("find latest price: %w", err)
	}

	return &domain.MetalPrice{
		ID:            mp.ID,
		GoldPrice:     mp.GoldPrice,
		SilverPrice:   mp.SilverPrice,
		PlatinumPrice: mp.PlatinumPrice,
		UpdatedAt:     unixToTime(mp.UpdatedAt),
		UpdatedBy:     mp.UpdatedBy,
	}, nil
}
