package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

func ListClients(c *gin.Context) {
	var clients []models.Client
	if err := database.DB.Order("name asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo los clientes"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	client, ok := findClient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	client.ID = 0
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del cliente es obligatorio"})
		return
	}

	// nombre único, sin distinguir mayúsculas
	var count int64
	database.DB.Model(&models.Client{}).
		Where("LOWER(name) = LOWER(?)", client.Name).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un cliente con ese nombre"})
		return
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el cliente"})
		return
	}

	Triggers.ClientCreated(c.Request.Context(), client)

	c.JSON(http.StatusCreated, client)
}

func UpdateClient(c *gin.Context) {
	client, ok := findClient(c)
	if !ok {
		return
	}

	var updated models.Client
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	updated.Name = strings.TrimSpace(updated.Name)
	if updated.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del cliente es obligatorio"})
		return
	}

	if !strings.EqualFold(updated.Name, client.Name) {
		var count int64
		database.DB.Model(&models.Client{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", updated.Name, client.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un cliente con ese nombre"})
			return
		}
	}

	client.Name = updated.Name
	client.Slogan = updated.Slogan
	client.Description = updated.Description
	client.Services = updated.Services
	client.Persons = updated.Persons
	client.Email = updated.Email
	client.Brandwords = updated.Brandwords
	client.Fonts = updated.Fonts
	client.Color = updated.Color
	client.PhotoURL = updated.PhotoURL
	client.Banner = updated.Banner
	client.Contacts = updated.Contacts

	if err := database.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el cliente"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func DeleteClient(c *gin.Context) {
	client, ok := findClient(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando el cliente"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado"})
}

func findClient(c *gin.Context) (models.Client, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return models.Client{}, false
	}

	var client models.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		return models.Client{}, false
	}
	return client, true
}
