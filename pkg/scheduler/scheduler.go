// Package scheduler runs recurring background tasks on robfig/cron: fixed
// intervals and once-a-day wall clock runs. A failed or panicking run is logged
// and the task stays scheduled; a run still in progress is never started twice.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Task единица фоновой работы
type Task func(ctx context.Context) error

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает результат каждого запуска (например, метрики)
type Observer interface {
	ObserveJob(job string, duration time.Duration, err error)
}

type job struct {
	name     string
	task     Task
	schedule cron.Schedule
}

// Scheduler планировщик фоновых задач
type Scheduler struct {
	logger   Logger
	observer Observer

	jobs []job
	wg   sync.WaitGroup
}

// New создает планировщик. observer может быть nil.
func New(logger Logger, observer Observer) *Scheduler {
	return &Scheduler{logger: logger, observer: observer}
}

// Every запускает задачу каждые interval
func (s *Scheduler) Every(name string, interval time.Duration, task Task) {
	s.jobs = append(s.jobs, job{name: name, task: task, schedule: intervalSchedule(interval)})
}

// DailyAt запускает задачу каждый день в hour:minute по часовому поясу loc
func (s *Scheduler) DailyAt(name string, hour, minute int, loc *time.Location, task Task) error {
	schedule, err := DailySchedule(hour, minute, loc)
	if err != nil {
		return fmt.Errorf("scheduler: job %s: %w", name, err)
	}
	s.jobs = append(s.jobs, job{name: name, task: task, schedule: schedule})
	return nil
}

// Start запускает задачи до отмены ctx
func (s *Scheduler) Start(ctx context.Context) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{s.logger})))
	for _, j := range s.jobs {
		j := j
		c.Schedule(j.schedule, cron.FuncJob(func() { s.RunOnce(ctx, j.name, j.task) }))
	}

	s.wg.Add(1)
	c.Start()
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		// Ждем завершения уже запущенных задач
		<-c.Stop().Done()
	}()

	s.logger.Info("Scheduler: started %d jobs", len(s.jobs))
}

// Wait ждет остановки планировщика после отмены контекста
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// RunOnce выполняет один запуск задачи: ошибки и паники логируются, но не пробрасываются
func (s *Scheduler) RunOnce(ctx context.Context, name string, task Task) {
	started := time.Now()
	err := safeRun(ctx, task)

	if s.observer != nil {
		s.observer.ObserveJob(name, time.Since(started), err)
	}
	if err != nil {
		s.logger.Error("Scheduler: job %s failed: %v", name, err)
	}
}

func safeRun(ctx context.Context, task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return task(ctx)
}

// DailySchedule расписание hour:minute каждый день в часовом поясе loc
func DailySchedule(hour, minute int, loc *time.Location) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", minute, hour))
	if err != nil {
		return nil, err
	}
	if daily, ok := schedule.(*cron.SpecSchedule); ok && loc != nil {
		daily.Location = loc
	}
	return schedule, nil
}

// intervalSchedule следующий запуск через фиксированный интервал.
// В отличие от cron.Every не округляет интервал до секунд.
type intervalSchedule time.Duration

func (i intervalSchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(i))
}

// cronLogger передает ошибки cron в логгер сервиса, служебные сообщения отбрасываются
type cronLogger struct {
	logger Logger
}

func (cronLogger) Info(string, ...interface{}) {}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("Scheduler: %s: %v %v", msg, err, keysAndValues)
}
