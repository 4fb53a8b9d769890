package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id string) (domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domainbooking.Booking{}, domainbooking.ErrBookingNotFound
		}
		return domainbooking.Booking{}, err
	}
	return doc.toEntity(), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomNumber string) ([]domainbooking.Booking, error) {
	return r.find(ctx, bson.M{"room_number": roomNumber})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]domainbooking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []domainbooking.Booking
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *BookingRepository) Insert(ctx context.Context, b domainbooking.Booking) error {
	_, err := r.col.InsertOne(ctx, newBookingDocument(b))
	return err
}

func (r *BookingRepository) Update(ctx context.Context, b domainbooking.Booking) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, newBookingDocument(b))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainbooking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainbooking.ErrBookingNotFound
	}
	return nil
}

type bookingDocument struct {
	ID         string  `bson:"_id"`
	GuestName  string  `bson:"guest_name"`
	Phone      string  `bson:"phone"`
	Email      string  `bson:"email"`
	NationalID string  `bson:"national_id"`
	RoomNumber string  `bson:"room_number"`
	CheckIn    string  `bson:"check_in"`
	CheckOut   string  `bson:"check_out"`
	TotalPrice float64 `bson:"total_price"`
	CreatedAt  int64   `bson:"created_at"`
}

func newBookingDocument(b domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:         b.ID,
		GuestName:  b.GuestName,
		Phone:      b.Phone,
		Email:      b.Email,
		NationalID: b.NationalID,
		RoomNumber: b.RoomNumber,
		CheckIn:    string(b.Range.CheckIn),
		CheckOut:   string(b.Range.CheckOut),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.UnixMilli(),
	}
}

func (d bookingDocument) toEntity() domainbooking.Booking {
	return domainbooking.Booking{
		ID:         d.ID,
		GuestName:  d.GuestName,
		Phone:      d.Phone,
		Email:      d.Email,
		NationalID: d.NationalID,
		RoomNumber: d.RoomNumber,
		Range: daterange.DateRange{
			CheckIn:  daterange.DayKey(d.CheckIn),
			CheckOut: daterange.DayKey(d.CheckOut),
		},
		TotalPrice: d.TotalPrice,
		CreatedAt:  time.UnixMilli(d.CreatedAt).UTC(),
	}
}
