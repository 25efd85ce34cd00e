package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUpdateProject_TaskReadErrorFails(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "client_id", "is_archived"}).
			AddRow(5, "Rebrand", 7, false))
	mock.ExpectExec(`UPDATE "projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// el recálculo del progreso necesita las tareas vivas; si no se pueden
	// leer, la respuesta no puede fingir un proyecto sin tareas
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnError(errors.New("db down"))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/projects/:id", UpdateProject)

	req := httptest.NewRequest(http.MethodPut, "/projects/5",
		strings.NewReader(`{"name":"Rebrand","clientId":7}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "error")
	require.NoError(t, mock.ExpectationsWereMet())
}
