// Package seed fills an empty database with the default owner account,
// opening hours and business profile.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

//go:embed default.yaml
var defaultData []byte

// ErrInvalidData возвращается при некорректном файле начальных данных
var ErrInvalidData = errors.New("seed: invalid data")

// Data начальные данные
type Data struct {
	Owner         Owner        `yaml:"owner"`
	BusinessInfo  BusinessInfo `yaml:"business_info"`
	BusinessHours []HourRange  `yaml:"business_hours"`
}

type Owner struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type BusinessInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// HourRange один диапазон, повторенный для каждого из дней
type HourRange struct {
	Days  []string `yaml:"days"`
	Start string   `yaml:"start"`
	End   string   `yaml:"end"`
}

// AccountService создание аккаунтов
type AccountService interface {
	Count(ctx context.Context) (int, error)
	CreateAccount(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
}

// BusinessHoursService часы работы
type BusinessHoursService interface {
	Count(ctx context.Context) (int, error)
	SaveRange(ctx context.Context, req *models.SaveRangeRequest) (*models.BusinessHourResponse, error)
}

// BusinessInfoService профиль бизнеса
type BusinessInfoService interface {
	Exists(ctx context.Context) (bool, error)
	Save(ctx context.Context, info *domain.BusinessInfo) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Load читает данные из файла path, пустой path - встроенные данные по умолчанию
func Load(path string) (*Data, error) {
	raw := defaultData
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
		}
	}

	data := &Data{}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if data.Owner.Username == "" || data.Owner.Password == "" {
		return nil, fmt.Errorf("%w: owner username and password are required", ErrInvalidData)
	}
	return data, nil
}

// Seeder создает недостающие начальные данные
type Seeder struct {
	accounts AccountService
	hours    BusinessHoursService
	info     BusinessInfoService
	logger   Logger
}

func NewSeeder(accounts AccountService, hours BusinessHoursService, info BusinessInfoService, logger Logger) *Seeder {
	return &Seeder{accounts: accounts, hours: hours, info: info, logger: logger}
}

// Run заполняет только пустые части: аккаунты, часы работы, профиль.
// Повторный запуск ничего не меняет.
func (s *Seeder) Run(ctx context.Context, data *Data) error {
	if err := s.seedOwner(ctx, data.Owner); err != nil {
		return err
	}
	if err := s.seedHours(ctx, data.BusinessHours); err != nil {
		return err
	}
	return s.seedInfo(ctx, data.BusinessInfo)
}

func (s *Seeder) seedOwner(ctx context.Context, owner Owner) error {
	count, err := s.accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.accounts.CreateAccount(ctx, owner.Username, owner.Password, domain.RoleOwner); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	s.logger.Warn("Seed: created default owner account %q, change its password", owner.Username)
	return nil
}

func (s *Seeder) seedHours(ctx context.Context, ranges []HourRange) error {
	count, err := s.hours.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed business hours: %w", err)
	}
	if count > 0 {
		return nil
	}

	created := 0
	for _, r := range ranges {
		for _, name := range r.Days {
			day, err := parseWeekday(name)
			if err != nil {
				return err
			}
			if _, err := s.hours.SaveRange(ctx, &models.SaveRangeRequest{
				DayOfWeek: int(day),
				StartTime: r.Start,
				EndTime:   r.End,
				IsOpen:    true,
			}); err != nil {
				return fmt.Errorf("seed business hours %s %s-%s: %w", day, r.Start, r.End, err)
			}
			created++
		}
	}

	s.logger.Info("Seed: created %d business hour ranges", created)
	return nil
}

func (s *Seeder) seedInfo(ctx context.Context, info BusinessInfo) error {
	exists, err := s.info.Exists(ctx)
	if err != nil {
		return fmt.Errorf("seed business info: %w", err)
	}
	if exists {
		return nil
	}

	record := &domain.BusinessInfo{Name: info.Name}
	if info.Description != "" {
		record.Description = &info.Description
	}
	if err := s.info.Save(ctx, record); err != nil {
		return fmt.Errorf("seed business info: %w", err)
	}
	s.logger.Info("Seed: created business profile %q", info.Name)
	return nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrInvalidData, name)
}
