package notify

import (
	"context"
	"log"
	"time"
)

// TokenStore reads and prunes the registered device tokens.
type TokenStore interface {
	ListTokens(ctx context.Context) ([]string, error)
	DeleteTokens(ctx context.Context, tokens []string) error
}

// Recorder persists one feed entry per broadcast.
type Recorder interface {
	SaveNotification(ctx context.Context, title, body string, ts time.Time) error
}

// Pusher delivers one multicast push. The returned slice is aligned with the
// tokens slice: oks[i] reports whether tokens[i] accepted the message.
type Pusher interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string) (oks []bool, err error)
}

type Service struct {
	tokens  TokenStore
	records Recorder
	pusher  Pusher
	now     func() time.Time
}

func NewService(tokens TokenStore, records Recorder, pusher Pusher) *Service {
	return &Service{tokens: tokens, records: records, pusher: pusher, now: time.Now}
}

// Broadcast delivers (title, body) to every registered device and leaves one
// entry in the notifications feed. Every send is attempted exactly once: no
// retries, no dedup, no ordering between tokens. Tokens that reject the send
// are deleted.
//
// Only the initial token read can return an error. With zero tokens the call
// is a silent no-op (no record is written). Record and delivery failures are
// logged and swallowed independently of each other: a notification can end
// up delivered but not recorded, or recorded but not delivered.
//
// Returns the number of tokens registered at read time.
func (s *Service) Broadcast(ctx context.Context, title, body string) (int, error) {
	tokens, err := s.tokens.ListTokens(ctx)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		log.Println("no notification tokens registered, skipping broadcast")
		return 0, nil
	}

	if err := s.records.SaveNotification(ctx, title, body, s.now()); err != nil {
		log.Printf("failed to save notification record: %v", err)
	}

	oks, err := s.pusher.SendMulticast(ctx, tokens, title, body)
	if err != nil {
		log.Printf("failed to send notifications: %v", err)
		return len(tokens), nil
	}

	var failed []string
	for i := range tokens {
		if i >= len(oks) || !oks[i] {
			failed = append(failed, tokens[i])
		}
	}
	if len(failed) > 0 {
		log.Printf("%d/%d notification tokens rejected the send, removing them", len(failed), len(tokens))
		if err := s.tokens.DeleteTokens(ctx, failed); err != nil {
			log.Printf("failed to remove stale tokens: %v", err)
		}
	}

	return len(tokens), nil
}
