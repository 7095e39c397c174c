package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
)

// UseCase use case для записи клиента на услугу и переноса записи
type UseCase struct {
	services      ServiceProvider
	businessHours BusinessHoursProvider
	checker       AvailabilityChecker
	planner       SlotPlanner
	customers     CustomerResolver
	appointments  AppointmentRepository
	locker        Locker
	notifier      Notifier
	metrics       MetricsRecorder
	timeProvider  TimeProvider
	horizonMonths int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	services ServiceProvider,
	businessHours BusinessHoursProvider,
	checker AvailabilityChecker,
	planner SlotPlanner,
	customers CustomerResolver,
	appointments AppointmentRepository,
	locker Locker,
	notifier Notifier,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	horizonMonths int,
	logger Logger,
) *UseCase {
	if horizonMonths <= 0 {
		horizonMonths = domain.BookingHorizonMonths
	}
	return &UseCase{
		services:      services,
		businessHours: businessHours,
		checker:       checker,
		planner:       planner,
		customers:     customers,
		appointments:  appointments,
		locker:        locker,
		notifier:      notifier,
		metrics:       metrics,
		timeProvider:  timeProvider,
		horizonMonths: horizonMonths,
		logger:        logger,
	}
}

// Execute выполняет запись или перенос.
// Проверки идут строго по порядку: окно записи, занятость слота, личность клиента.
// Проверка и запись выполняются под блокировкой ресурса appointments в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: service=%s, start=%s, reschedule=%t",
		req.ServiceID, req.Start.Format(domain.DateTimeFormat), req.IsReschedule())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Окно записи: от текущего момента до горизонта
	if err := validateTimeWindow(req.Start, now, uc.horizonMonths); err != nil {
		uc.logger.Warn("BookAppointment: start=%s is outside of booking window", req.Start.Format(domain.DateTimeFormat))
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.services.Get(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("BookAppointment: service id=%s is not active", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Конец записи определяется длительностью услуги
	end, err := resolveEnd(req.Start, req.End, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("BookAppointment: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.AppointmentDetails

	// 6. Проверка слота и запись под блокировкой
	err = uc.locker.WithLock(ctx, domain.LockKeyAppointments, func(txCtx context.Context) error {
		// 6.1. Интервал не пересекается ни с одной записью
		available, err := uc.checker.IsSlotAvailable(txCtx, req.Start, end)
		if err != nil {
			uc.logger.Error("BookAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("BookAppointment: slot %s is taken", req.Start.Format(domain.DateTimeFormat))
			return domain.ErrSlotTaken
		}

		// 6.2. Начало совпадает с одним из слотов часов работы
		if err := uc.checkAlignment(txCtx, req.Start, service.DurationMinutes, now); err != nil {
			return err
		}

		// 6.3. Определяем клиента
		customer, err := uc.resolveCustomer(txCtx, req)
		if err != nil {
			return err
		}

		// 6.4. Перенос или новая запись
		var saved *domain.Appointment
		if req.IsReschedule() {
			saved, err = uc.reschedule(txCtx, req, customer, end)
		} else {
			saved, err = uc.create(txCtx, req, customer, end)
		}
		if err != nil {
			return err
		}

		// 6.5. Читаем запись с данными клиента и услуги
		details, err := uc.appointments.GetDetailsByID(txCtx, saved.ID)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to load appointment id=%s: %v", saved.ID, err)
			return fmt.Errorf("%w: failed to load appointment: %w", ErrInternal, err)
		}

		result = details
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.logger.Info("BookAppointment: saved appointment id=%s, customer=%s", result.ID, result.CustomerID)

	// 7. После фиксации транзакции: уведомление и метрики, ошибки не влияют на результат
	uc.notify(ctx, result, req.IsReschedule())
	if uc.metrics != nil {
		kind := KindCreated
		if req.IsReschedule() {
			kind = KindRescheduled
		}
		uc.metrics.ObserveBooking(kind)
	}

	return &Response{Appointment: result, Rescheduled: req.IsReschedule()}, nil
}

func (uc *UseCase) checkAlignment(ctx context.Context, start time.Time, durationMinutes int, now time.Time) error {
	ranges, err := uc.businessHours.ListByDay(ctx, start.Weekday(), true)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get business hours: %v", err)
		return fmt.Errorf("%w: failed to get business hours: %w", ErrInternal, err)
	}

	candidates, err := uc.planner.Candidates(durationMinutes, start, ranges, now)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to enumerate slots: %v", err)
		return fmt.Errorf("%w: failed to enumerate slots: %w", ErrInternal, err)
	}

	for _, c := range candidates {
		if c.Start.Equal(start) {
			return nil
		}
	}

	uc.logger.Warn("BookAppointment: start=%s does not match opening hours", start.Format(domain.DateTimeFormat))
	return domain.ErrSlotTaken
}

// resolveCustomer возвращает клиента записи.
// Для аккаунта без клиента (владелец) возвращает nil без ошибки.
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	if req.Username != nil {
		customer, found, err := uc.customers.FindByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return customer, nil
	}

	existing, found, err := uc.customers.FindByEmailAndPhone(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if !found {
		existing = nil
	}

	customer, err := uc.customers.Resolve(ctx, existing, req.Email, req.Phone, req.FirstName, req.LastName, nil)
	if err != nil {
		uc.logger.Warn("BookAppointment: customer rejected: %v", err)
		return nil, err
	}
	return customer, nil
}

func (uc *UseCase) create(ctx context.Context, req *Request, customer *domain.Customer, end time.Time) (*domain.Appointment, error) {
	if customer == nil {
		uc.logger.Warn("BookAppointment: account %s has no customer profile", *req.Username)
		return nil, domain.ErrCustomerNotFound
	}

	if customer.IsNew() {
		saved, err := uc.customers.Save(ctx, customer)
		if err != nil {
			return nil, err
		}
		customer = saved
	}

	created, err := uc.appointments.Create(ctx, &domain.Appointment{
		CustomerID: customer.ID,
		ServiceID:  req.ServiceID,
		Start:      req.Start,
		End:        end,
	})
	if err != nil {
		return nil, uc.mapWriteError("create", err)
	}
	return created, nil
}

func (uc *UseCase) reschedule(ctx context.Context, req *Request, customer *domain.Customer, end time.Time) (*domain.Appointment, error) {
	appointment, err := uc.appointments.GetByID(ctx, *req.AppointmentID)
	if err != nil {
		return nil, uc.mapWriteError("reschedule", err)
	}

	// Владелец переносит любые записи, клиент - только свои
	if req.Role != domain.RoleOwner {
		if customer == nil || customer.IsNew() || appointment.CustomerID != customer.ID {
			uc.logger.Warn("BookAppointment: appointment id=%s belongs to another customer", appointment.ID)
			return nil, ErrAccessDenied
		}
	}

	appointment.ServiceID = req.ServiceID
	appointment.Start = req.Start
	appointment.End = end
	// Перенесенная запись снова ожидает визита
	appointment.IsCompleted = false

	if err := uc.appointments.Update(ctx, appointment); err != nil {
		return nil, uc.mapWriteError("reschedule", err)
	}
	return appointment, nil
}

func (uc *UseCase) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrOverlap):
		uc.logger.Warn("BookAppointment: %s rejected by overlap constraint", op)
		return domain.ErrSlotTaken
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		return ErrAppointmentNotFound
	}
	uc.logger.Error("BookAppointment: %s failed: %v", op, err)
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}

func (uc *UseCase) mapError(err error) error {
	if _, ok := domain.AsBusinessError(err); ok {
		return err
	}
	if errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrInternal) {
		return err
	}
	uc.logger.Error("BookAppointment: transaction failed: %v", err)
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func (uc *UseCase) notify(ctx context.Context, details *domain.AppointmentDetails, rescheduled bool) {
	if uc.notifier == nil {
		return
	}
	mail := domain.ConfirmationMail(details, rescheduled)
	if err := uc.notifier.SendMail(ctx, mail.To, mail.Subject, mail.Body); err != nil {
		uc.logger.Warn("BookAppointment: failed to send confirmation for id=%s: %v", details.ID, err)
	}
}
