package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

func ListGoals(c *gin.Context) {
	var goals []models.Goal
	if err := database.DB.Order("created_at asc").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo los objetivos"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func CreateGoal(c *gin.Context) {
	var goal models.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	goal.ID = 0
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El título del objetivo es obligatorio"})
		return
	}

	// límite del dashboard
	var count int64
	database.DB.Model(&models.Goal{}).Count(&count)
	if count >= models.MaxGoals {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Máximo 3 objetivos mensuales"})
		return
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el objetivo"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func UpdateGoal(c *gin.Context) {
	goal, ok := findGoal(c)
	if !ok {
		return
	}

	var updated models.Goal
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El título del objetivo es obligatorio"})
		return
	}

	goal.Title = updated.Title
	goal.Description = updated.Description

	if err := database.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el objetivo"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func DeleteGoal(c *gin.Context) {
	goal, ok := findGoal(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando el objetivo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Objetivo eliminado"})
}

func findGoal(c *gin.Context) (models.Goal, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de objetivo inválido"})
		return models.Goal{}, false
	}

	var goal models.Goal
	if err := database.DB.First(&goal, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Objetivo no encontrado"})
		return models.Goal{}, false
	}
	return goal, true
}
