package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"vacationplanner/config"
	"vacationplanner/models"
)

type tripDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	models.TripPlan `bson:",inline"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per plan; ids are ObjectID hex strings.
type MongoStore struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func ConnectMongo(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*MongoStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(cctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Warn("could not create trips index", zap.Error(err))
	}
	return NewMongoStore(coll, log), nil
}

func NewMongoStore(coll *mongo.Collection, log *zap.Logger) *MongoStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &MongoStore{coll: coll, log: log}
}

func (s *MongoStore) SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error) {
	doc := tripDocument{TripPlan: *plan, UpdatedAt: time.Now().UTC()}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = doc.UpdatedAt
	}

	if oid, err := primitive.ObjectIDFromHex(plan.ID); err == nil {
		doc.ID = oid
		_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return "", fmt.Errorf("save trip plan: %w", err)
		}
		return oid.Hex(), nil
	}

	doc.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("save trip plan: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (s *MongoStore) LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.NotFoundError{Resource: "trip", ID: id}
	}

	var doc tripDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &models.NotFoundError{Resource: "trip", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("load trip plan: %w", err)
	}
	return doc.plan(), nil
}

func (s *MongoStore) ListTripPlans(ctx context.Context) ([]*models.TripPlan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list trip plans: %w", err)
	}
	defer cur.Close(ctx)

	var docs []tripDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trip plans: %w", err)
	}
	plans := make([]*models.TripPlan, 0, len(docs))
	for i := range docs {
		plans = append(plans, docs[i].plan())
	}
	return plans, nil
}

func (s *MongoStore) DeleteTripPlan(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &models.NotFoundError{Resource: "trip", ID: id}
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return &models.NotFoundError{Resource: "trip", ID: id}
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}

func (d *tripDocument) plan() *models.TripPlan {
	p := d.TripPlan
	p.ID = d.ID.Hex()
	return &p
}
