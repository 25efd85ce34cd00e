package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

func ListEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Order("start asc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo los eventos"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	event.ID = 0
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El título del evento es obligatorio"})
		return
	}
	if event.Start.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El evento necesita fecha de inicio"})
		return
	}

	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el evento"})
		return
	}

	Triggers.EventCreated(c.Request.Context(), event)

	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	var updated models.Event
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El título del evento es obligatorio"})
		return
	}

	event.Title = updated.Title
	event.Start = updated.Start
	event.End = updated.End
	event.Color = updated.Color

	if err := database.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el evento"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando el evento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Evento eliminado"})
}

func findEvent(c *gin.Context) (models.Event, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de evento inválido"})
		return models.Event{}, false
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evento no encontrado"})
		return models.Event{}, false
	}
	return event, true
}
