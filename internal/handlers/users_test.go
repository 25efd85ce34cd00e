package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencyx/internal/mailer"
	"agencyx/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	calls int
	last  models.User
	err   error
}

var _ mailer.Sender = (*fakeMailer)(nil)

func (f *fakeMailer) SendWelcome(_ context.Context, user models.User) error {
	f.calls++
	f.last = user
	return f.err
}

func setFakeMailer(t *testing.T, f *fakeMailer) {
	t.Helper()
	prev := Mailer
	Mailer = f
	t.Cleanup(func() { Mailer = prev })
}

func doApprove(t *testing.T, id string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/users/:id/approve", ApproveUser)

	req := httptest.NewRequest(http.MethodPost, "/users/"+id+"/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pendingUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "full_name", "sector", "status", "role"}).
		AddRow(4, "ana@maenstudiosx.space", "Ana García", "design", "pending", "user")
}

func TestApproveUser_PendingToAcceptedSendsWelcome(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(pendingUserRows())
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	f := &fakeMailer{}
	setFakeMailer(t, f)

	w := doApprove(t, "4")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), string(models.StatusAccepted))

	require.Equal(t, 1, f.calls, "exactly one welcome email per approval")
	require.Equal(t, "ana@maenstudiosx.space", f.last.Email)
	require.Equal(t, models.StatusAccepted, f.last.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveUser_AlreadyAcceptedIsNoop(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "status", "role"}).
			AddRow(4, "ana@maenstudiosx.space", "Ana García", "accepted", "user"))

	f := &fakeMailer{}
	setFakeMailer(t, f)

	w := doApprove(t, "4")
	require.Equal(t, http.StatusOK, w.Code)
	require.Zero(t, f.calls, "re-approving must not resend the welcome email")
	require.NoError(t, mock.ExpectationsWereMet(), "no write for an already accepted account")
}

func TestApproveUser_MailFailureDoesNotBlockApproval(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(pendingUserRows())
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	f := &fakeMailer{err: errors.New("resend down")}
	setFakeMailer(t, f)

	w := doApprove(t, "4")
	require.Equal(t, http.StatusOK, w.Code, "the email never blocks the approval")
	require.Contains(t, w.Body.String(), string(models.StatusAccepted))
	require.Equal(t, 1, f.calls)
}

func TestApproveUser_UnknownUser(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	f := &fakeMailer{}
	setFakeMailer(t, f)

	w := doApprove(t, "99")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Zero(t, f.calls)
}
