// Package triggers compone los mensajes de cada evento de negocio y los pasa
// al fan-out de notificaciones. Ningún trigger devuelve error: un fallo se
// registra en el log y nunca bloquea la escritura que lo disparó.
package triggers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"agencyx/internal/models"
)

// Broadcaster es el fan-out de notify.Service.
type Broadcaster interface {
	Broadcast(ctx context.Context, title, body string) (int, error)
}

// Directory cubre las lecturas que necesitan los composers.
type Directory interface {
	ClientName(ctx context.Context, id uint) (string, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
}

type Service struct {
	notifier Broadcaster
	dir      Directory
	loc      *time.Location
}

func NewService(notifier Broadcaster, dir Directory, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{notifier: notifier, dir: dir, loc: loc}
}

func (s *Service) broadcast(ctx context.Context, title, body string) {
	if _, err := s.notifier.Broadcast(ctx, title, body); err != nil {
		log.Printf("trigger %q failed: %v", title, err)
	}
}

func (s *Service) ClientCreated(ctx context.Context, client models.Client) {
	name := client.Name
	if name == "" {
		name = "Nombre desconocido"
	}
	body := fmt.Sprintf("¡Tenemos nuevo cliente! Welcome %q", name)
	s.broadcast(ctx, "¡Nuevo Cliente!", body)
}

func (s *Service) ProjectCreated(ctx context.Context, project models.Project) {
	clientName := "Cliente desconocido"
	if project.ClientID != 0 {
		name, err := s.dir.ClientName(ctx, project.ClientID)
		switch {
		case err != nil:
			log.Printf("failed to look up client %d for project notification: %v", project.ClientID, err)
		case name != "":
			clientName = name
		}
	}
	body := fmt.Sprintf("Se ha creado el nuevo proyecto %q para %s", project.Name, clientName)
	s.broadcast(ctx, "¡Nuevo Proyecto!", body)
}

// TaskUpdated notifica solo la transición isDone false→true. Cualquier otra
// actualización (true→true, false→false, true→false) se ignora.
func (s *Service) TaskUpdated(ctx context.Context, before, after models.Task) {
	if before.IsDone || !after.IsDone {
		return
	}
	s.broadcast(ctx, "¡Tarea completada!", taskCompletedBody(after))
}

func taskCompletedBody(task models.Task) string {
	var names []string
	for _, u := range task.AssignedUsers {
		if strings.TrimSpace(u.FullName) != "" {
			names = append(names, u.FullName)
		}
	}

	switch len(names) {
	case 0:
		return fmt.Sprintf("Se ha completado la tarea: %s", task.Name)
	case 1:
		return fmt.Sprintf("%s ha completado la tarea %q", names[0], task.Name)
	default:
		return fmt.Sprintf("%s han completado la tarea %q", strings.Join(names, ", "), task.Name)
	}
}

func (s *Service) EventCreated(ctx context.Context, event models.Event) {
	when := "Fecha desconocida"
	if !event.Start.IsZero() {
		when = event.Start.In(s.loc).Format("02/01/2006 a las 15:04")
	}
	title := event.Title
	if title == "" {
		title = "Evento desconocido"
	}
	body := fmt.Sprintf("Se ha programado el evento %q para el %s", title, when)
	s.broadcast(ctx, "¡Evento confirmado!", body)
}

// EventDayCheck recorre todos los eventos y notifica los que caen hoy
// (comparación por año/mes/día en la zona configurada, la hora se ignora).
// Sin dedup: cada ejecución vuelve a notificar los eventos del día.
func (s *Service) EventDayCheck(ctx context.Context, now time.Time) {
	events, err := s.dir.ListEvents(ctx)
	if err != nil {
		log.Printf("event-day check: failed to list events: %v", err)
		return
	}

	y, m, d := now.In(s.loc).Date()
	for _, ev := range events {
		if ev.Start.IsZero() {
			log.Printf("event-day check: event %d has no start date, skipping", ev.ID)
			continue
		}
		start := ev.Start.In(s.loc)
		ey, em, ed := start.Date()
		if ey != y || em != m || ed != d {
			continue
		}

		title := ev.Title
		if title == "" {
			title = "Evento sin nombre"
		}
		body := fmt.Sprintf("Hoy a las %s es el evento %q.", start.Format("15:04"), title)
		s.broadcast(ctx, "¡Es hoy!", body)
	}
}
