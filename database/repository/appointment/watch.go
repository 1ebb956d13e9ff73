package appointmentRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// Watch opens a change stream over the business's appointments and streams
// every insert and status update until ctx is canceled. The dashboard serves
// these events over SSE instead of polling.
func (r *MongoAppointmentRepo) Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType":           bson.M{"$in": bson.A{"insert", "update", "replace"}},
			"fullDocument.businessId": businessID,
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open appointment change stream: %w", err)
	}

	out := make(chan models.Appointment)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument models.Appointment `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
