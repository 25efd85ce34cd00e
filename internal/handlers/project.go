package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

// projectResponse añade al proyecto sus tareas y el progreso derivado.
// El progreso nunca se guarda: se recalcula en cada lectura.
type projectResponse struct {
	models.Project
	Tasks    []models.Task `json:"tasks"`
	Progress int           `json:"progress"`
}

func toProjectResponse(project models.Project, tasks []models.Task) projectResponse {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return projectResponse{
		Project:  project,
		Tasks:    tasks,
		Progress: models.Progress(tasks),
	}
}

func ListProjects(c *gin.Context) {
	var projects []models.Project
	q := database.DB.Order("name asc")
	// ?archived=true lista el archivo; por defecto solo los activos
	if c.Query("archived") == "true" {
		q = q.Where("is_archived = ?", true)
	} else {
		q = q.Where("is_archived = ?", false)
	}
	if err := q.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo los proyectos"})
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		var tasks []models.Task
		if err := database.DB.Where("project_id = ?", p.ID).Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo las tareas"})
			return
		}
		resp = append(resp, toProjectResponse(p, tasks))
	}
	c.JSON(http.StatusOK, resp)
}

func GetProject(c *gin.Context) {
	project, ok := findProject(c)
	if !ok {
		return
	}

	var tasks []models.Task
	if err := database.DB.Where("project_id = ?", project.ID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo las tareas"})
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project, tasks))
}

func CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	project.ID = 0
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del proyecto es obligatorio"})
		return
	}
	if project.ClientID != 0 {
		var count int64
		database.DB.Model(&models.Client{}).Where("id = ?", project.ClientID).Count(&count)
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El cliente indicado no existe"})
			return
		}
	}

	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el proyecto"})
		return
	}

	Triggers.ProjectCreated(c.Request.Context(), project)

	c.JSON(http.StatusCreated, toProjectResponse(project, nil))
}

func UpdateProject(c *gin.Context) {
	project, ok := findProject(c)
	if !ok {
		return
	}

	var updated models.Project
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	updated.Name = strings.TrimSpace(updated.Name)
	if updated.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del proyecto es obligatorio"})
		return
	}

	project.Name = updated.Name
	project.Description = updated.Description
	project.ClientID = updated.ClientID
	project.DueDate = updated.DueDate
	project.IsArchived = updated.IsArchived
	project.AssignedUsers = updated.AssignedUsers

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el proyecto"})
		return
	}

	var tasks []models.Task
	if err := database.DB.Where("project_id = ?", project.ID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo las tareas"})
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project, tasks))
}

// ArchiveProject alterna el flag de archivado.
func ArchiveProject(c *gin.Context) {
	project, ok := findProject(c)
	if !ok {
		return
	}

	project.IsArchived = !project.IsArchived
	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el proyecto"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func DeleteProject(c *gin.Context) {
	project, ok := findProject(c)
	if !ok {
		return
	}

	// las tareas no viven sin su proyecto
	if err := database.DB.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando las tareas del proyecto"})
		return
	}
	if err := database.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando el proyecto"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proyecto eliminado"})
}

func findProject(c *gin.Context) (models.Project, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de proyecto inválido"})
		return models.Project{}, false
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyecto no encontrado"})
		return models.Project{}, false
	}
	return project, true
}
