package triggers

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// El aviso "es hoy" corre una vez al día a hora fija, igual que la función
// programada original.
const (
	EventDaySchedule = "0 7 * * *"
	EventDayTimeZone = "Europe/Madrid"
)

// Scheduler ejecuta EventDayCheck según EventDaySchedule.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(svc *Service, loc *time.Location) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(EventDaySchedule, func() {
		svc.EventDayCheck(context.Background(), time.Now())
	}); err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
