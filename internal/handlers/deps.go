package handlers

import (
	"agencyx/internal/mailer"
	"agencyx/internal/notify"
	"agencyx/internal/triggers"
)

// dependencias compartidas por los handlers; se fijan una vez en el arranque
var (
	Notifier *notify.Service
	Triggers *triggers.Service
	Mailer   mailer.Sender = mailer.Disabled{}
)

func Init(notifier *notify.Service, trig *triggers.Service, mail mailer.Sender) {
	Notifier = notifier
	Triggers = trig
	if mail != nil {
		Mailer = mail
	}
}
