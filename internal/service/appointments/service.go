package appointments

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

// Service сервис просмотра и отмены записей
type Service struct {
	repo      AppointmentRepository
	customers CustomerFinder
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, customers CustomerFinder, logger Logger) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		logger:    logger,
	}
}

// ListAll все записи по времени начала. activeOnly оставляет только незавершенные.
func (s *Service) ListAll(ctx context.Context, activeOnly bool) (*models.AppointmentListResponse, error) {
	items, err := s.list(ctx, "ListAll", domain.AppointmentFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	return models.FromDomainDetailsList(items), nil
}

// ListForCustomer незавершенные записи клиента аккаунта username
func (s *Service) ListForCustomer(ctx context.Context, username string) (*models.AppointmentListResponse, error) {
	customer, err := s.customerOf(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := s.list(ctx, "ListForCustomer", domain.AppointmentFilter{CustomerID: &customer.ID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return models.FromDomainDetailsList(items), nil
}

// CancelOwn удаляет запись клиента. Чужую запись отменить нельзя.
func (s *Service) CancelOwn(ctx context.Context, username string, id uuid.UUID) error {
	customer, err := s.customerOf(ctx, username)
	if err != nil {
		return err
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelOwn: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelOwn: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelOwn - get appointment: %w", ErrInternal, err)
	}

	if appointment.CustomerID != customer.ID {
		s.logger.Warn("CancelOwn: appointment id=%s does not belong to username=%s", id, username)
		return ErrAccessDenied
	}

	return s.delete(ctx, "CancelOwn", id)
}

// Delete удаляет любую запись (владелец)
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, "Delete", id)
}

// ExportXML пишет записи в w в виде <appointments><appointment>...</appointment></appointments>
func (s *Service) ExportXML(ctx context.Context, w io.Writer, activeOnly bool) error {
	items, err := s.list(ctx, "ExportXML", domain.AppointmentFilter{ActiveOnly: activeOnly})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: ExportXML - write header: %w", ErrInternal, err)
	}

	encoder := xml.NewEncoder(w)
	if err := encoder.Encode(models.FromDomainDetailsXML(items)); err != nil {
		return fmt.Errorf("%w: ExportXML - encode: %w", ErrInternal, err)
	}
	if err := encoder.Flush(); err != nil {
		return fmt.Errorf("%w: ExportXML - flush: %w", ErrInternal, err)
	}

	s.logger.Info("ExportXML: exported %d appointments (activeOnly=%t)", len(items), activeOnly)
	return nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error) {
	items, err := s.repo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return items, nil
}

func (s *Service) delete(ctx context.Context, op string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - delete: %w", ErrInternal, op, err)
	}

	s.logger.Info("%s: appointment id=%s deleted", op, id)
	return nil
}

func (s *Service) customerOf(ctx context.Context, username string) (*domain.Customer, error) {
	customer, found, err := s.customers.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: customer lookup: %w", ErrInternal, err)
	}
	if !found {
		s.logger.Warn("no customer for username=%s", username)
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}
