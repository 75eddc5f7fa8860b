package controllers

import (
	"fmt"
	"net/http"

	"directory-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UserRoot answers GET / on the user service.
func (ctrl *Controller) UserRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "This is User Management System (Basic)")
	}
}

func (ctrl *Controller) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		users, err := ctrl.DB.ListAll(ctx, models.UserCollection)
		if err != nil {
			abortWithError(c, "failed to fetch users", err)
			return
		}

		if users == nil {
			users = []models.Record{}
		}
		log.Debug().Int("count", len(users)).Msg("Users retrieved successfully!")
		c.JSON(http.StatusOK, users)
	}
}

func (ctrl *Controller) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		user, err := bindRecord(c)
		if err != nil {
			badJSON(c, err)
			return
		}

		if !ctrl.checkRequired(c, models.UserRequiredKeys, user) {
			return
		}

		userId, err := ctrl.DB.InsertOne(ctx, models.UserCollection, user)
		if err != nil {
			abortWithError(c, "error creating a user", err)
			return
		}

		log.Info().Str("id", fmt.Sprint(userId)).Msg("User created successfully")
		c.String(http.StatusOK, "Create user data successfully")
	}
}
