package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"agencyx/internal/database"
	"agencyx/internal/models"

	"github.com/gin-gonic/gin"
)

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("full_name asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leyendo los usuarios"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveUser pasa la cuenta de pending a accepted y dispara el correo de
// bienvenida. Aprobar una cuenta ya aceptada es un no-op.
func ApproveUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	if user.Status == models.StatusAccepted {
		c.JSON(http.StatusOK, user)
		return
	}

	user.Status = models.StatusAccepted
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el usuario"})
		return
	}

	if err := Mailer.SendWelcome(c.Request.Context(), user); err != nil {
		// el correo nunca bloquea la aprobación
		log.Printf("failed to send welcome email to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	FullName *string          `json:"fullName"`
	Sector   *string          `json:"sector"`
	PhotoURL *string          `json:"photoUrl"`
	Role     *models.UserRole `json:"role"`
}

func UpdateUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Sector != nil {
		user.Sector = strings.TrimSpace(*req.Sector)
	}
	if req.PhotoURL != nil {
		user.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}
	if req.Role != nil {
		switch *req.Role {
		case models.RoleAdmin, models.RoleUser:
			user.Role = *req.Role
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rol inválido"})
			return
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error guardando el usuario"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando el usuario"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}

func findUser(c *gin.Context) (models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario inválido"})
		return models.User{}, false
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return models.User{}, false
	}
	return user, true
}
