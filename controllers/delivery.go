package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/repository"
)

func CreateDelivery(repo *repository.DeliveryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var delivery models.Delivery
		if err := c.ShouldBindJSON(&delivery); err != nil {
			badPayload(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &delivery)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetDelivery(repo *repository.DeliveryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		delivery, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

func ListDeliveries(repo *repository.DeliveryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		deliveries, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}

func UpdateDelivery(repo *repository.DeliveryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch repository.DeliveryPatch
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

func DeleteDelivery(repo *repository.DeliveryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
