package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
)

type firestoreServiceCenterRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreServiceCenterRepository(client *firestore.Client, collection string) repository.ServiceCenterRepository {
	return &firestoreServiceCenterRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreServiceCenterRepository) GetByID(ctx context.Context, id string) (*entity.ServiceCenter, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Service center", err)
		}
		return nil, errors.Internal("Failed to get service center", err)
	}

	var center entity.ServiceCenter
	if err := doc.DataTo(&center); err != nil {
		return nil, errors.Internal("Failed to parse service center data", err)
	}

	return &center, nil
}

func (r *firestoreServiceCenterRepository) List(ctx context.Context) ([]*entity.ServiceCenter, error) {
	query := r.client.Collection(r.collection).OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var centers []*entity.ServiceCenter

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list service centers", err)
		}

		var center entity.ServiceCenter
		if err := doc.DataTo(&center); err != nil {
			return nil, errors.Internal("Failed to parse service center data", err)
		}
		centers = append(centers, &center)
	}

	return centers, nil
}

// SearchByTitle fetches the collection and filters in memory. Firestore has
// no full-text search; the catalog is small, so a contains check beats
// wiring a dedicated search service.
func (r *firestoreServiceCenterRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.ServiceCenter, error) {
	query = strings.ToLower(query)

	docs, err := r.client.Collection(r.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search service centers", err)
	}

	matched := []*entity.ServiceCenter{}
	for _, doc := range docs {
		var center entity.ServiceCenter
		if err := doc.DataTo(&center); err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(center.Title), query) {
			matched = append(matched, &center)
		}
	}

	return matched, nil
}
