package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата в часовом поясе бизнеса (время игнорируется)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ServiceID       uuid.UUID     // ID услуги
	DurationMinutes int           // Длительность услуги
	Slots           []domain.Slot // Свободные слоты по возрастанию
}
