package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
)

type firestoreAppointmentRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreAppointmentRepository(client *firestore.Client, collection string) repository.AppointmentRepository {
	return &firestoreAppointmentRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == "" {
		doc := r.client.Collection(r.collection).NewDoc()
		appointment.ID = doc.ID
	}

	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(r.collection).Doc(appointment.ID).Set(ctx, appointment)
	if err != nil {
		return errors.Internal("Failed to create appointment", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Appointment", err)
		}
		return nil, errors.Internal("Failed to get appointment", err)
	}

	var appointment entity.Appointment
	if err := doc.DataTo(&appointment); err != nil {
		return nil, errors.Internal("Failed to parse appointment data", err)
	}

	return &appointment, nil
}

// ListByCreator applies no order clause; callers get whatever order the
// store returns, which for Firestore is document-id order.
func (r *firestoreAppointmentRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Appointment, error) {
	query := r.client.Collection(r.collection).Where("creator", "==", creatorID)

	iter := query.Documents(ctx)
	var appointments []*entity.Appointment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list appointments", err)
		}

		var appointment entity.Appointment
		if err := doc.DataTo(&appointment); err != nil {
			return nil, errors.Internal("Failed to parse appointment data", err)
		}
		appointments = append(appointments, &appointment)
	}

	return appointments, nil
}

func (r *firestoreAppointmentRepository) UpdateStatus(ctx context.Context, id string, appointmentStatus entity.AppointmentStatus) error {
	_, err := r.client.Collection(r.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: appointmentStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Appointment", err)
		}
		return errors.Internal("Failed to update appointment status", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(r.collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete appointment", err)
	}

	return nil
}
