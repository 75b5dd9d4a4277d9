package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
)

type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
	centerRepo      repository.ServiceCenterRepository
}

func NewAppointmentUseCase(appointmentRepo repository.AppointmentRepository, centerRepo repository.ServiceCenterRepository) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointmentRepo: appointmentRepo,
		centerRepo:      centerRepo,
	}
}

type BookAppointmentInput struct {
	CreatorID string
	CenterID  string
	Date      time.Time
	Services  []string
}

// BookAppointment creates an appointment with status fixed to Booked and
// the date normalized to UTC at second precision. No slot-conflict check is
// performed; two users can book the same slot.
func (uc *AppointmentUseCase) BookAppointment(ctx context.Context, input BookAppointmentInput) (*entity.Appointment, error) {
	if input.Date.IsZero() {
		return nil, errors.BadRequest("Appointment date is required", nil)
	}

	appointment := &entity.Appointment{
		Date:      input.Date.UTC().Truncate(time.Second),
		Status:    entity.AppointmentBooked,
		CreatorID: input.CreatorID,
		CenterID:  input.CenterID,
		Services:  input.Services,
		CreatedAt: time.Now(),
	}

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// CancelAppointment flips the appointment status to Cancelled. The document
// stays in the collection so the visit history keeps showing it.
func (uc *AppointmentUseCase) CancelAppointment(ctx context.Context, id string, requesterID string) error {
	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if appointment.CreatorID != requesterID {
		return errors.Forbidden("Appointment belongs to another user", nil)
	}

	return uc.appointmentRepo.UpdateStatus(ctx, id, entity.AppointmentCancelled)
}

// VisitedServiceCenters lists the user's appointments, then resolves each
// referenced center concurrently and merges the appointment's date and
// status onto it. The lookups are jointly awaited: one failure fails the
// whole call and discards the partial results. Output order follows the
// appointment list.
func (uc *AppointmentUseCase) VisitedServiceCenters(ctx context.Context, userID string) ([]*entity.VisitedServiceCenter, error) {
	appointments, err := uc.appointmentRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	visited := make([]*entity.VisitedServiceCenter, len(appointments))

	g, ctx := errgroup.WithContext(ctx)
	for i, appointment := range appointments {
		i, appointment := i, appointment
		g.Go(func() error {
			center, err := uc.centerRepo.GetByID(ctx, appointment.CenterID)
			if err != nil {
				return err
			}

			visited[i] = &entity.VisitedServiceCenter{
				ServiceCenter:     *center,
				AppointmentID:     appointment.ID,
				AppointmentDate:   appointment.Date,
				AppointmentStatus: appointment.Status,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return visited, nil
}
