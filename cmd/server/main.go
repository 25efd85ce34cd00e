package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"agencyx/internal/config"
	"agencyx/internal/database"
	"agencyx/internal/handlers"
	"agencyx/internal/mailer"
	"agencyx/internal/notify"
	"agencyx/internal/server"
	"agencyx/internal/triggers"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	ctx := context.Background()

	var pusher notify.Pusher = notify.LogPusher{}
	if cfg.FCMCredentialsFile != "" {
		p, err := notify.NewFCMPusher(ctx, cfg.FCMCredentialsFile)
		if err != nil {
			log.Fatalf("failed to init FCM pusher: %v", err)
		}
		pusher = p
	} else {
		log.Println("FCM_CREDENTIALS_FILE is not set, push delivery disabled")
	}

	store := notify.NewGormStore(database.DB)
	notifier := notify.NewService(store, store, pusher)

	loc, err := time.LoadLocation(triggers.EventDayTimeZone)
	if err != nil {
		log.Fatalf("failed to load timezone %s: %v", triggers.EventDayTimeZone, err)
	}
	trig := triggers.NewService(notifier, database.Directory{DB: database.DB}, loc)

	var mail mailer.Sender = mailer.Disabled{}
	if cfg.ResendAPIKey != "" {
		mail = mailer.NewResendMailer(cfg.ResendAPIKey)
	} else {
		log.Println("RESEND_API_KEY is not set, welcome emails disabled")
	}

	handlers.Init(notifier, trig, mail)

	sched, err := triggers.NewScheduler(trig, loc)
	if err != nil {
		log.Fatalf("failed to init scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
