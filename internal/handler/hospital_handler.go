package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-registry-service/internal/models"
	"hospital-registry-service/internal/service"
	"hospital-registry-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// CreateHospitalRequest represents the request body for creating a hospital.
// The id is assigned by the service and never client-supplied; an id key in
// the body is ignored. Bed counts are pointers so that a missing field is
// rejected while an explicit zero is accepted.
type CreateHospitalRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	TotalBeds *int   `json:"total_beds" binding:"required,gte=0"`
	ICUBeds   *int   `json:"icu_beds" binding:"required,gte=0"`
}

// CreateHospital creates a new hospital record
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital := models.Hospital{
		Name:      req.Name,
		Location:  req.Location,
		TotalBeds: *req.TotalBeds,
		ICUBeds:   *req.ICUBeds,
	}

	if err := h.hospitalService.CreateHospital(&hospital); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospital")
		}
		return
	}

	utils.Created(c, hospital)
}

// GetAllHospitals retrieves hospitals with skip/limit pagination
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid skip parameter")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	hospitals := h.hospitalService.ListHospitals(skip, limit)

	utils.OK(c, hospitals)
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(id)
	if err != nil {
		var notFoundErr *models.NotFoundError
		if errors.As(err, &notFoundErr) {
			utils.ErrorResponse(c, http.StatusNotFound, notFoundErr.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		}
		return
	}

	utils.OK(c, hospital)
}
