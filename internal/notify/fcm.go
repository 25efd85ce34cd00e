package notify

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMPusher envía el multicast a través de Firebase Cloud Messaging.
type FCMPusher struct {
	client *messaging.Client
}

func NewFCMPusher(ctx context.Context, credentialsFile string) (*FCMPusher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return &FCMPusher{client: client}, nil
}

func (p *FCMPusher) SendMulticast(ctx context.Context, tokens []string, title, body string) ([]bool, error) {
	resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Tokens: tokens,
	})
	if err != nil {
		return nil, err
	}

	oks := make([]bool, len(resp.Responses))
	for i, r := range resp.Responses {
		oks[i] = r.Success
	}
	return oks, nil
}

// LogPusher sustituye a FCM cuando no hay credenciales configuradas: registra
// el envío en el log y da todos los tokens por buenos.
type LogPusher struct{}

func (LogPusher) SendMulticast(_ context.Context, tokens []string, title, body string) ([]bool, error) {
	log.Printf("push delivery disabled, dropping notification %q (%d tokens)", title, len(tokens))
	oks := make([]bool, len(tokens))
	for i := range oks {
		oks[i] = true
	}
	return oks, nil
}
