package repository

import (
	"context"

	"motorserve/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}
