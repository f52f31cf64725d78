package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/repository"
)

func CreateOrder(repo *repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			badPayload(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &order)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetOrder(repo *repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func ListOrders(repo *repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func UpdateOrder(repo *repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch repository.OrderPatch
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

func DeleteOrder(repo *repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
