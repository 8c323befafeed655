package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myfinances-be/internal/entities"
	"myfinances-be/internal/models"
	"myfinances-be/internal/repository"
	"myfinances-be/internal/service"
)

type EntryController struct {
	entryService service.EntryService
	userService  service.UserService
}

func NewEntryController(entryService service.EntryService, userService service.UserService) *EntryController {
	return &EntryController{
		entryService: entryService,
		userService:  userService,
	}
}

// Search handles GET /api/v1/entries?description=&month=&year=&user=
func (ec *EntryController) Search(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provide a user id for the query.",
		})
		return
	}

	user, err := ec.userService.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if user == nil {
		respondServiceError(c, &service.NotFoundError{Message: "Query failed. User not found for the given id."})
		return
	}

	filter := &repository.EntryFilter{UserID: userID}
	if description := c.Query("description"); description != "" {
		filter.Description = &description
	}
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid query parameters",
			})
			return
		}
		filter.Month = &month
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid query parameters",
			})
			return
		}
		filter.Year = &year
	}

	entries, err := ec.entryService.Search(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []*entities.Entry{}
	}

	c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/v1/entries
func (ec *EntryController) Create(c *gin.Context) {
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, ok := ec.toEntry(c, &req)
	if !ok {
		return
	}

	saved, err := ec.entryService.Create(entry)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Update handles PUT /api/v1/entries/:id
func (ec *EntryController) Update(c *gin.Context) {
	existing, ok := ec.findEntry(c)
	if !ok {
		return
	}

	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, converted := ec.toEntry(c, &req)
	if !converted {
		return
	}
	entry.ID = existing.ID
	entry.RegistrationDate = existing.RegistrationDate
	if entry.Status == "" {
		entry.Status = existing.Status
	}

	saved, err := ec.entryService.Update(entry)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /api/v1/entries/:id
func (ec *EntryController) Delete(c *gin.Context) {
	existing, ok := ec.findEntry(c)
	if !ok {
		return
	}

	if err := ec.entryService.Delete(existing); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PUT /api/v1/entries/:id/status
func (ec *EntryController) UpdateStatus(c *gin.Context) {
	existing, ok := ec.findEntry(c)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	status, valid := entities.ParseEntryStatus(req.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provide a valid status.",
		})
		return
	}

	saved, err := ec.entryService.UpdateStatus(existing, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// findEntry resolves the :id path parameter to a persisted entry, answering
// 400 when the id is malformed or unknown
func (ec *EntryController) findEntry(c *gin.Context) (*entities.Entry, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry id",
		})
		return nil, false
	}

	entry, err := ec.entryService.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return nil, false
	}
	if entry == nil {
		respondServiceError(c, &service.NotFoundError{Message: "Entry not found in the database."})
		return nil, false
	}

	return entry, true
}

// toEntry builds a domain entry from the request body. The owning user must
// exist when one is referenced; a zero user id is left for the validator so
// it produces its own message.
func (ec *EntryController) toEntry(c *gin.Context, req *models.EntryRequest) (*entities.Entry, bool) {
	if req.UserID != 0 {
		user, err := ec.userService.FindByID(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return nil, false
		}
		if user == nil {
			respondServiceError(c, &service.NotFoundError{Message: "User not found for the given id."})
			return nil, false
		}
	}

	entry := &entities.Entry{
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Value:       req.Value,
		UserID:      req.UserID,
	}

	// Unknown type/status strings are left empty so the validator and the
	// create default apply, instead of leaking garbage into the store.
	if entryType, ok := entities.ParseEntryType(req.Type); ok {
		entry.Type = entryType
	}
	if status, ok := entities.ParseEntryStatus(req.Status); ok {
		entry.Status = status
	}

	return entry, true
}
