// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package mongodb implements storage interfaces using MongoDB
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirosfoundation/go-oicp/internal/storage"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

var _ storage.RecordStore = (*Store)(nil)

// Store implements storage.RecordStore using MongoDB
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	// Collections
	evses    *mongo.Collection
	statuses *mongo.Collection
	cdrs     *mongo.Collection
}

// Config holds MongoDB connection settings
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// NewStore creates a new MongoDB store
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	database := cfg.Database
	if database == "" {
		database = "oicp"
	}
	db := client.Database(database)

	s := &Store{
		client:   client,
		db:       db,
		evses:    db.Collection("evse_data"),
		statuses: db.Collection("evse_status"),
		cdrs:     db.Collection("charge_detail_records"),
	}

	if err := s.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating indexes: %w", err)
	}

	return s, nil
}

func (s *Store) createIndexes(ctx context.Context) error {
	_, err := s.evses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "operator_id", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "updated_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating EVSE data indexes: %w", err)
	}

	_, err = s.statuses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "operator_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("creating EVSE status indexes: %w", err)
	}

	_, err = s.cdrs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "evse_id", Value: 1}, {Key: "session_start", Value: -1}}},
		{Keys: bson.D{{Key: "received_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating charge detail record indexes: %w", err)
	}

	return nil
}

// Close closes the MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EVSEDataStore implementation

func (s *Store) PutEVSEData(ctx context.Context, d message.EVSEData) (int, error) {
	now := time.Now()
	var models []mongo.WriteModel
	for _, g := range d.OperatorEVSEData() {
		for _, r := range g.Records() {
			if r.DeltaType() == message.DeltaTypeDelete {
				models = append(models, mongo.NewDeleteOneModel().
					SetFilter(bson.M{"_id": r.ID().String()}))
				continue
			}
			doc, err := storage.NewEVSEDataDocument(g.OperatorID(), g.OperatorName(), r, now)
			if err != nil {
				return 0, err
			}
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": doc.ID}).
				SetReplacement(doc).
				SetUpsert(true))
		}
	}
	if len(models) == 0 {
		return 0, nil
	}

	res, err := s.evses.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("writing EVSE data: %w", err)
	}
	return int(res.UpsertedCount + res.MatchedCount + res.DeletedCount), nil
}

func (s *Store) GetEVSEData(ctx context.Context, id ids.EVSEID) (message.EVSEDataRecord, error) {
	var doc storage.EVSEDataDocument
	err := s.evses.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return message.EVSEDataRecord{}, fmt.Errorf("EVSE %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return message.EVSEDataRecord{}, err
	}
	return doc.EVSEDataRecord()
}

func (s *Store) ListEVSEData(ctx context.Context, operator ids.OperatorID) ([]message.EVSEDataRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.evses.Find(ctx, bson.M{"operator_id": operator.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []message.EVSEDataRecord
	for cursor.Next(ctx) {
		var doc storage.EVSEDataDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		r, err := doc.EVSEDataRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, cursor.Err()
}

// EVSEStatusStore implementation

func (s *Store) PutEVSEStatus(ctx context.Context, st message.EVSEStatus) (int, error) {
	now := time.Now()
	var models []mongo.WriteModel
	for _, g := range st.OperatorEVSEStatus() {
		for _, r := range g.Records() {
			doc, err := storage.NewEVSEStatusDocument(g.OperatorID(), r, now)
			if err != nil {
				return 0, err
			}
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": doc.ID}).
				SetReplacement(doc).
				SetUpsert(true))
		}
	}
	if len(models) == 0 {
		return 0, nil
	}

	res, err := s.statuses.BulkWrite(ctx, models)
	if err != nil {
		return 0, fmt.Errorf("writing EVSE status: %w", err)
	}
	return int(res.UpsertedCount + res.MatchedCount), nil
}

func (s *Store) GetEVSEStatus(ctx context.Context, id ids.EVSEID) (message.EVSEStatusRecord, error) {
	var doc storage.EVSEStatusDocument
	err := s.statuses.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return message.EVSEStatusRecord{}, fmt.Errorf("EVSE %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return message.EVSEStatusRecord{}, err
	}
	return doc.EVSEStatusRecord()
}

// ChargeDetailRecordStore implementation

func (s *Store) PutChargeDetailRecord(ctx context.Context, cdr message.ChargeDetailRecord) error {
	doc, err := storage.NewChargeDetailRecordDocument(cdr, time.Now())
	if err != nil {
		return err
	}
	_, err = s.cdrs.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("session %s: %w", doc.ID, storage.ErrDuplicate)
	}
	return err
}

func (s *Store) GetChargeDetailRecord(ctx context.Context, id ids.SessionID) (message.ChargeDetailRecord, error) {
	var doc storage.ChargeDetailRecordDocument
	err := s.cdrs.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return message.ChargeDetailRecord{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return message.ChargeDetailRecord{}, err
	}
	return doc.ChargeDetailRecord()
}
