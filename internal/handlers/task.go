package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

func ListTasks(c *gin.Context) {
	q := database.DB.Order("created_at asc")
	if pid := c.Query("projectId"); pid != "" {
		id, err := strconv.Atoi(pid)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de proyecto inválido"})
			return
		}
		q = q.Where("project_id = ?", id)
	}

	var tasks []models.Task
	if err := q.Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo las tareas"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	task.ID = 0
	task.Name = strings.TrimSpace(task.Name)
	if task.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la tarea es obligatorio"})
		return
	}
	if task.ProjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La tarea necesita un proyecto"})
		return
	}
	var count int64
	database.DB.Model(&models.Project{}).Where("id = ?", task.ProjectID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El proyecto indicado no existe"})
		return
	}

	if err := database.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando la tarea"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func UpdateTask(c *gin.Context) {
	task, ok := findTask(c)
	if !ok {
		return
	}
	before := task

	var updated models.Task
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	updated.Name = strings.TrimSpace(updated.Name)
	if updated.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la tarea es obligatorio"})
		return
	}

	task.Name = updated.Name
	task.Description = updated.Description
	task.DueDate = updated.DueDate
	task.IsDone = updated.IsDone
	task.AssignedUsers = updated.AssignedUsers

	if err := database.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando la tarea"})
		return
	}

	// el trigger decide por sí mismo si la transición merece aviso
	Triggers.TaskUpdated(c.Request.Context(), before, task)

	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context) {
	task, ok := findTask(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando la tarea"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tarea eliminada"})
}

func findTask(c *gin.Context) (models.Task, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de tarea inválido"})
		return models.Task{}, false
	}

	var task models.Task
	if err := database.DB.First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
		return models.Task{}, false
	}
	return task, true
}
