package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/repository"
)

func CreateCategory(repo *repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			badPayload(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &category)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetCategory(repo *repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func ListCategories(repo *repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(repo *repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch repository.CategoryPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badPayload(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteCategory(repo *repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
