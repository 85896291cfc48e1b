package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

const inventoryCollection = "inventory_items"

// InventoryRepository persists inventory items in MongoDB.
type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{coll: db.Collection(inventoryCollection)}
}

type mongoItem struct {
	ID          string  `bson:"_id"`
	SKU         string  `bson:"sku"`
	Name        string  `bson:"name"`
	MetalType   string  `bson:"metal_type"`
	WeightGrams float64 `bson:"weight_grams"`
	CostPrice   float64 `bson:"cost_price"`
	PhotoBase64 string  `bson:"photo_base64,omitempty"`
	Description string  `bson:"description,omitempty"`
	CreatedAt   int64   `bson:"created_at"`
	UpdatedAt   int64   `bson:"updated_at"`
	CreatedBy   string  `bson:"created_by"`
}

func toMongoItem(item *domain.InventoryItem) mongoItem {
	return mongoItem{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		MetalType:   string(item.MetalType),
		WeightGrams: item.WeightGrams,
		CostPrice:   item.CostPrice,
		PhotoBase64: item.PhotoBase64,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.Unix(),
		UpdatedAt:   item.UpdatedAt.Unix(),
		CreatedBy:   item.CreatedBy,
	}
}

func (mi mongoItem) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:          mi.ID,
		SKU:         mi.SKU,
		Name:        mi.Name,
		MetalType:   domain.MetalType(mi.MetalType),
		WeightGrams: mi.WeightGrams,
		CostPrice:   mi.CostPrice,
		PhotoBase64: mi.PhotoBase64,
		Description: mi.Description,
		CreatedAt:   unixToTime(mi.CreatedAt),
		UpdatedAt:   unixToTime(mi.UpdatedAt),
		CreatedBy:   mi.CreatedBy,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	if _, err := r.coll.InsertOne(ctx, toMongoItem(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSKUExists
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *InventoryRepository) FindBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error) {
	return r.findOne(ctx, bson.M{"sku": sku})
}

func (r *InventoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.InventoryItem, error) {
	var mi mongoItem
	if err := r.coll.FindOne(ctx, filter).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.InventoryItem
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, toMongoItem(item))
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
