package handlers

import (
	"net/http"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// ListNotifications devuelve el feed para la campana de la app, lo más
// reciente primero.
func ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := database.DB.Order("timestamp desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo las notificaciones"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

type registerTokenRequest struct {
	Token  string `json:"token"`
	Device string `json:"device"`
}

// RegisterToken da de alta el token FCM del dispositivo. Repetir el mismo
// token actualiza el registro en vez de duplicarlo.
func RegisterToken(c *gin.Context) {
	var req registerTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el token"})
		return
	}

	var userID uint
	if userVal, ok := c.Get("CurrentUser"); ok {
		if user, ok := userVal.(models.User); ok {
			userID = user.ID
		}
	}

	token := models.NotifToken{
		Token:  req.Token,
		UserID: userID,
		Device: req.Device,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "device"}),
	}).Create(&token).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el token"})
		return
	}

	c.JSON(http.StatusCreated, token)
}

// ProjectCompleted es el único endpoint que acepta el contenido de la
// notificación del llamante en vez de componerlo. Queda fuera de la sesión
// (la SPA lo llama como a la función HTTP original) y por eso gestiona su
// propio CORS y método.
func ProjectCompleted(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	case http.MethodPost:
		// seguimos
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método no permitido"})
		return
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos requeridos"})
		return
	}

	count, err := Notifier.Broadcast(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron tokens"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificación enviada con éxito"})
}
