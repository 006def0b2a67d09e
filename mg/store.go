// Package mg stores inflammation datasets in MongoDB.
package mg

import (
	"context"
	"fmt"

	"inflammation/defs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const DatasetsCollection = "datasets"

type DatasetStore interface {
	WriteDataset(ctx context.Context, d *defs.Dataset) (*mongo.UpdateResult, error)
	ReadDatasets(ctx context.Context) ([]defs.Dataset, error)
	DeleteDataset(ctx context.Context, name string) error
}

type MongoStore struct {
	Client *mongo.Client
	Logger *zap.Logger

	DBName string
}

func New(ctx context.Context, cfg defs.MongoConfig, dbName string, logger *zap.Logger) (*MongoStore, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	return &MongoStore{
		Client: mongoClient,
		Logger: logger,
		DBName: dbName,
	}, nil
}

// WriteDataset inserts the dataset if no dataset with the same name exists.
func (ms *MongoStore) WriteDataset(ctx context.Context, d *defs.Dataset) (*mongo.UpdateResult, error) {
	ms.Logger.Debug(
		"inserting dataset",
		zap.String("name", d.Name),
		zap.Int("patients", len(d.Patients)),
	)

	res, err := ms.Client.
		Database(ms.DBName).
		Collection(DatasetsCollection).
		UpdateOne(ctx, bson.M{"name": d.Name},
			bson.M{"$setOnInsert": d},
			options.Update().SetUpsert(true),
		)
	if err != nil {
		return nil, fmt.Errorf("unable to insert dataset: %w", err)
	}

	return res, err
}

// ReadDatasets returns every stored dataset, sorted by name.
func (ms *MongoStore) ReadDatasets(ctx context.Context) ([]defs.Dataset, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{primitive.E{Key: "name", Value: 1}})

	cur, err := ms.Client.
		Database(ms.DBName).
		Collection(DatasetsCollection).
		Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to read datasets: %w", err)
	}

	var datasets []defs.Dataset
	if err := cur.All(ctx, &datasets); err != nil {
		return nil, fmt.Errorf("unable to read datasets: %w", err)
	}
	return datasets, nil
}

func (ms *MongoStore) DeleteDataset(ctx context.Context, name string) error {
	ms.Logger.Debug("deleting dataset", zap.String("name", name))
	_, err := ms.Client.
		Database(ms.DBName).
		Collection(DatasetsCollection).
		DeleteOne(ctx, bson.M{"name": name})
	return err
}

// LoadAll implements the analysis source over the stored datasets.
func (ms *MongoStore) LoadAll(ctx context.Context) ([]defs.Table, error) {
	datasets, err := ms.ReadDatasets(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]defs.Table, len(datasets))
	for i := range datasets {
		tables[i] = datasets[i].Table()
	}
	return tables, nil
}
