package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	tokens  []string
	listErr error

	deleted [][]string
	delErr  error
}

var _ TokenStore = (*fakeTokenStore)(nil)

func (f *fakeTokenStore) ListTokens(_ context.Context) ([]string, error) {
	return append([]string(nil), f.tokens...), f.listErr
}

func (f *fakeTokenStore) DeleteTokens(_ context.Context, tokens []string) error {
	f.deleted = append(f.deleted, append([]string(nil), tokens...))
	return f.delErr
}

type savedRecord struct {
	title, body string
	ts          time.Time
}

type fakeRecorder struct {
	saved []savedRecord
	err   error
}

var _ Recorder = (*fakeRecorder)(nil)

func (f *fakeRecorder) SaveNotification(_ context.Context, title, body string, ts time.Time) error {
	f.saved = append(f.saved, savedRecord{title: title, body: body, ts: ts})
	return f.err
}

type fakePusher struct {
	oks []bool
	err error

	gotTokens []string
	gotTitle  string
	gotBody   string
	calls     int
}

var _ Pusher = (*fakePusher)(nil)

func (f *fakePusher) SendMulticast(_ context.Context, tokens []string, title, body string) ([]bool, error) {
	f.calls++
	f.gotTokens = append([]string(nil), tokens...)
	f.gotTitle, f.gotBody = title, body
	return f.oks, f.err
}

func newTestService(tokens *fakeTokenStore, records *fakeRecorder, pusher *fakePusher) *Service {
	s := NewService(tokens, records, pusher)
	s.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestBroadcast_NoTokensIsSilentNoop(t *testing.T) {
	tokens := &fakeTokenStore{}
	records := &fakeRecorder{}
	pusher := &fakePusher{}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Empty(t, records.saved, "no record without tokens")
	require.Zero(t, pusher.calls, "no send without tokens")
}

func TestBroadcast_DeliversAndRecordsOnce(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a", "b", "c"}}
	records := &fakeRecorder{}
	pusher := &fakePusher{oks: []bool{true, true, true}}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "¡Nuevo Cliente!", "hola")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.Len(t, records.saved, 1)
	require.Equal(t, "¡Nuevo Cliente!", records.saved[0].title)
	require.Equal(t, "hola", records.saved[0].body)

	require.Equal(t, 1, pusher.calls)
	require.Equal(t, []string{"a", "b", "c"}, pusher.gotTokens)
	require.Empty(t, tokens.deleted, "no deletions when every send succeeds")
}

func TestBroadcast_PrunesExactlyTheFailedTokens(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a", "b", "c", "d"}}
	records := &fakeRecorder{}
	pusher := &fakePusher{oks: []bool{true, false, true, false}}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Equal(t, 4, count)

	require.Len(t, records.saved, 1, "one record regardless of failures")
	require.Len(t, tokens.deleted, 1)
	require.Equal(t, []string{"b", "d"}, tokens.deleted[0])
}

func TestBroadcast_AllTokensFail(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a", "b"}}
	records := &fakeRecorder{}
	pusher := &fakePusher{oks: []bool{false, false}}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, records.saved, 1)
	require.Equal(t, [][]string{{"a", "b"}}, tokens.deleted)
}

func TestBroadcast_TokenReadErrorIsReturned(t *testing.T) {
	tokens := &fakeTokenStore{listErr: errors.New("db down")}
	records := &fakeRecorder{}
	pusher := &fakePusher{}
	s := newTestService(tokens, records, pusher)

	_, err := s.Broadcast(context.Background(), "t", "b")
	require.Error(t, err)
	require.Empty(t, records.saved)
	require.Zero(t, pusher.calls)
}

func TestBroadcast_SendErrorIsSwallowed(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a"}}
	records := &fakeRecorder{}
	pusher := &fakePusher{err: errors.New("fcm down")}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err, "delivery failure never reaches the caller")
	require.Equal(t, 1, count)
	require.Len(t, records.saved, 1, "record was attempted before delivery")
	require.Empty(t, tokens.deleted, "a failed multicast call proves nothing about individual tokens")
}

func TestBroadcast_RecordErrorDoesNotBlockDelivery(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a"}}
	records := &fakeRecorder{err: errors.New("insert failed")}
	pusher := &fakePusher{oks: []bool{true}}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 1, pusher.calls, "persistence and delivery are not transactional")
}

func TestBroadcast_PruneErrorIsSwallowed(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a", "b"}, delErr: errors.New("delete failed")}
	records := &fakeRecorder{}
	pusher := &fakePusher{oks: []bool{true, false}}
	s := newTestService(tokens, records, pusher)

	count, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestBroadcast_ShortResponseTreatsMissingAsFailed(t *testing.T) {
	tokens := &fakeTokenStore{tokens: []string{"a", "b", "c"}}
	records := &fakeRecorder{}
	pusher := &fakePusher{oks: []bool{true}}
	s := newTestService(tokens, records, pusher)

	_, err := s.Broadcast(context.Background(), "t", "b")
	require.NoError(t, err)
	require.Len(t, tokens.deleted, 1)
	require.Equal(t, []string{"b", "c"}, tokens.deleted[0])
}
