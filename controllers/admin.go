package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/repository"
)

func CreateAdmin(repo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admin models.Admin
		if err := c.ShouldBindJSON(&admin); err != nil {
			badPayload(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &admin)
		if err != nil {
			writeError(c, err)
			return
		}
		created.Password = ""
		c.JSON(http.StatusCreated, created)
	}
}

func GetAdmin(repo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		admin.Password = ""
		c.JSON(http.StatusOK, admin)
	}
}

func ListAdmins(repo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		for i := range admins {
			admins[i].Password = ""
		}
		c.JSON(http.StatusOK, admins)
	}
}

func UpdateAdmin(repo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch repository.AdminPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badPayload(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeError(c, err)
			return
		}
		updated.Password = ""
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteAdmin(repo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
