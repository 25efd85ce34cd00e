package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doCreateGoal(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/goals", CreateGoal)

	req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateGoal_RejectsFourthGoal(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	w := doCreateGoal(t, `{"title":"Más clientes"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Máximo 3 objetivos")
	require.NoError(t, mock.ExpectationsWereMet(), "nothing may be inserted past the limit")
}

func TestCreateGoal_BelowLimitIsStored(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	w := doCreateGoal(t, `{"title":"Más clientes","description":"Cerrar dos cuentas nuevas"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "Más clientes")
	require.NoError(t, mock.ExpectationsWereMet())
}
