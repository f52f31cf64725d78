package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/repository"
)

func CreateCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		if err := c.ShouldBindJSON(&cart); err != nil {
			badPayload(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &cart)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func ListCarts(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

func UpdateCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch repository.CartPatch
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

func DeleteCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
