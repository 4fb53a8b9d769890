package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainrooms "stayhub/internal/domain/rooms"
)

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection("rooms")}
}

func (r *RoomRepository) ByNumber(ctx context.Context, number string) (domainrooms.Room, error) {
	var doc roomDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": number}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domainrooms.Room{}, domainrooms.ErrRoomNotFound
		}
		return domainrooms.Room{}, err
	}
	return doc.toEntity(), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domainrooms.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []domainrooms.Room
	for cursor.Next(ctx) {
		var doc roomDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *RoomRepository) Insert(ctx context.Context, room domainrooms.Room) error {
	_, err := r.col.InsertOne(ctx, newRoomDocument(room))
	if mongo.IsDuplicateKeyError(err) {
		return domainrooms.ErrRoomExists
	}
	return err
}

func (r *RoomRepository) Update(ctx context.Context, room domainrooms.Room) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": room.Number}, newRoomDocument(room))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainrooms.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, number string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": number})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainrooms.ErrRoomNotFound
	}
	return nil
}

type roomDocument struct {
	Number        string            `bson:"_id"`
	Name          string            `bson:"name"`
	Images        []string          `bson:"images"`
	PricePerNight float64           `bson:"price_per_night"`
	Description   string            `bson:"description"`
	Capacity      int               `bson:"capacity"`
	Beds          []domainrooms.Bed `bson:"beds"`
	Amenities     []string          `bson:"amenities"`
}

func newRoomDocument(room domainrooms.Room) roomDocument {
	return roomDocument{
		Number:        room.Number,
		Name:          room.Name,
		Images:        room.Images,
		PricePerNight: room.PricePerNight,
		Description:   room.Description,
		Capacity:      room.Capacity,
		Beds:          room.Beds,
		Amenities:     room.Amenities,
	}
}

func (d roomDocument) toEntity() domainrooms.Room {
	return domainrooms.Room{
		Number:        d.Number,
		Name:          d.Name,
		Images:        d.Images,
		PricePerNight: d.PricePerNight,
		Description:   d.Description,
		Capacity:      d.Capacity,
		Beds:          d.Beds,
		Amenities:     d.Amenities,
	}
}
