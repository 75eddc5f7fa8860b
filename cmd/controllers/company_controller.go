package controllers

import (
	"fmt"
	"net/http"

	"directory-service/internal/errs"
	"directory-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyRoot answers GET / on the company service.
func (ctrl *Controller) CompanyRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	}
}

func (ctrl *Controller) GetCompanies() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		companies, err := ctrl.DB.ListAll(ctx, models.CompanyCollection)
		if err != nil {
			abortWithError(c, "failed to fetch companies", err)
			return
		}

		if companies == nil {
			companies = []models.Record{}
		}
		log.Debug().Int("count", len(companies)).Msg("Companies retrieved successfully!")
		c.JSON(http.StatusOK, companies)
	}
}

// CreateCompany stores a company with an empty employees array, whatever
// the caller sent for it.
func (ctrl *Controller) CreateCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		company, err := bindRecord(c)
		if err != nil {
			badJSON(c, err)
			return
		}
		models.ResetEmployees(company)

		if !ctrl.checkRequired(c, models.CompanyRequiredKeys, company) {
			return
		}

		companyId, err := ctrl.DB.InsertOne(ctx, models.CompanyCollection, company)
		if err != nil {
			abortWithError(c, "error creating a company", err)
			return
		}

		log.Info().Str("id", fmt.Sprint(companyId)).Msg("Company created successfully")
		c.String(http.StatusOK, "Create company successfully")
	}
}

// AddEmployee appends user_id to the employees of company_id. Neither id is
// checked for existence.
func (ctrl *Controller) AddEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		body, err := bindRecord(c)
		if err != nil {
			badJSON(c, err)
			return
		}

		if !ctrl.checkRequired(c, models.EmployeeRequiredKeys, body) {
			return
		}

		companyId, err := idField(body, "company_id")
		if err != nil {
			abortWithError(c, "invalid company_id", err)
			return
		}
		userId, err := idField(body, "user_id")
		if err != nil {
			abortWithError(c, "invalid user_id", err)
			return
		}

		matched, err := ctrl.DB.AppendToArrayField(ctx, models.CompanyCollection, companyId, models.EmployeesField, userId)
		if err != nil {
			abortWithError(c, "error adding employee to company", err)
			return
		}

		if matched == 0 {
			log.Warn().Str("company_id", companyId.Hex()).Msg("No company matched employee append")
			if ctrl.Strict {
				abortWithError(c, "company not found", fmt.Errorf("company %s: %w", companyId.Hex(), errs.ErrNotFound))
				return
			}
		}

		log.Info().Str("company_id", companyId.Hex()).Str("user_id", userId.Hex()).Msg("Employee added to company")
		c.String(http.StatusOK, "Add employee to company successfully")
	}
}

func idField(body models.Record, key string) (primitive.ObjectID, error) {
	hex, ok := body[key].(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%s must be a string: %w", key, errs.ErrInvalidIdentifier)
	}
	return ParseID(hex)
}
