package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ppf-service/internal/http/middleware"
	"ppf-service/internal/model"
	"ppf-service/internal/repository"
	"ppf-service/internal/service"
	"ppf-service/internal/workflow"
)

type Handler struct {
	jobService       *service.JobService
	issueService     *service.IssueService
	inventoryService *service.InventoryService
	catalogService   *service.CatalogService
	log              zerolog.Logger
}

func NewHandler(
	jobService *service.JobService,
	issueService *service.IssueService,
	inventoryService *service.InventoryService,
	catalogService *service.CatalogService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		jobService:       jobService,
		issueService:     issueService,
		inventoryService: inventoryService,
		catalogService:   catalogService,
		log:              log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", h.listJobs)
		jobs.POST("", h.createJob)
		jobs.GET("/summary", h.jobSummary)
		jobs.GET("/:id", h.getJob)
		jobs.PATCH("/:id", h.patchJob)
		jobs.DELETE("/:id", h.deleteJob)
		jobs.POST("/:id/advance", h.advanceJob)
		jobs.POST("/:id/regress", h.regressJob)
		jobs.POST("/:id/deliver", h.deliverJob)
		jobs.PATCH("/:id/stages/:stageId", h.updateJobStage)
		jobs.GET("/:id/issues", h.listJobIssues)
		jobs.POST("/:id/issues", h.createJobIssue)
		jobs.GET("/:id/ppf-usage", h.listJobUsage)
		jobs.POST("/:id/ppf-usage", h.createJobUsage)
	}

	issues := protected.Group("/issues")
	{
		issues.PATCH("/:id", h.updateIssue)
		issues.DELETE("/:id", h.deleteIssue)
	}

	users := protected.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
	}

	packages := protected.Group("/packages")
	{
		packages.GET("", h.listPackages)
		packages.POST("", h.createPackage)
		packages.DELETE("/:id", h.deletePackage)
	}

	products := protected.Group("/ppf-products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	rolls := protected.Group("/ppf-rolls")
	{
		rolls.GET("", h.listRolls)
		rolls.POST("", h.createRoll)
		rolls.GET("/:id", h.getRoll)
		rolls.PATCH("/:id", h.patchRoll)
		rolls.DELETE("/:id", h.deleteRoll)
	}

	protected.GET("/workflow/stages", h.listStageTemplates)
}

// Job handlers

func (h *Handler) createJob(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal", "unauthorized"))
		return
	}

	var req struct {
		CustomerName  string  `json:"customer_name" binding:"required"`
		CustomerPhone string  `json:"customer_phone" binding:"required"`
		VehicleBrand  string  `json:"vehicle_brand" binding:"required"`
		VehicleModel  string  `json:"vehicle_model" binding:"required"`
		VehicleYear   int     `json:"vehicle_year" binding:"required"`
		VehicleColor  string  `json:"vehicle_color"`
		RegNo         string  `json:"reg_no" binding:"required"`
		VIN           *string `json:"vin"`
		Package       string  `json:"package" binding:"required"`
		Priority      string  `json:"priority"`
		PromisedDate  string  `json:"promised_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), principal, service.CreateJobInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		VehicleBrand:  req.VehicleBrand,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		VehicleColor:  req.VehicleColor,
		RegNo:         req.RegNo,
		VIN:           req.VIN,
		Package:       req.Package,
		Priority:      req.Priority,
		PromisedDate:  req.PromisedDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(job))
}

func (h *Handler) listJobs(c *gin.Context) {
	filter, ok := jobFilterFromQuery(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(jobs))
}

func (h *Handler) jobSummary(c *gin.Context) {
	filter, ok := jobFilterFromQuery(c)
	if !ok {
		return
	}

	summaries, err := h.jobService.Summary(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summaries))
}

func jobFilterFromQuery(c *gin.Context) (repository.JobListFilter, bool) {
	filter := repository.JobListFilter{}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		js := model.JobStatus(strings.ToUpper(status))
		filter.Status = &js
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		jp := model.JobPriority(strings.ToUpper(priority))
		filter.Priority = &jp
	}
	if assignedTo := strings.TrimSpace(c.Query("assigned_to")); assignedTo != "" {
		filter.AssignedTo = &assignedTo
	}
	if pkg := strings.TrimSpace(c.Query("package")); pkg != "" {
		filter.Package = &pkg
	}

	return filter, true
}

func (h *Handler) getJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) patchJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	var req struct {
		CustomerName  *string `json:"customer_name"`
		CustomerPhone *string `json:"customer_phone"`
		VehicleColor  *string `json:"vehicle_color"`
		Priority      *string `json:"priority"`
		PromisedDate  *string `json:"promised_date"`
		Status        *string `json:"status"`
		AssignedTo    *string `json:"assigned_to"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	input := service.PatchJobInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		VehicleColor:  req.VehicleColor,
		Priority:      req.Priority,
		PromisedDate:  req.PromisedDate,
		Status:        req.Status,
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid assigned_to", "validation"))
			return
		}
		input.AssignedTo = &assignee
	}

	job, err := h.jobService.Patch(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) deleteJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) advanceJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	job, err := h.jobService.Advance(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) regressJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	job, err := h.jobService.Regress(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) deliverJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	job, err := h.jobService.Deliver(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) updateJobStage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}
	stageID, err := strconv.Atoi(c.Param("stageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid stage id", "validation"))
		return
	}

	var req struct {
		Checklist  []model.ChecklistItem `json:"checklist"`
		Notes      *string               `json:"notes"`
		Photos     []string              `json:"photos"`
		AssignedTo *string               `json:"assigned_to"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	patch := workflow.StagePatch{
		Checklist: req.Checklist,
		Notes:     req.Notes,
		Photos:    req.Photos,
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid assigned_to", "validation"))
			return
		}
		patch.AssignedTo = &assignee
	}

	job, err := h.jobService.UpdateStage(c.Request.Context(), id, stageID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(job))
}

func (h *Handler) listStageTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(workflow.Templates()))
}

// Issue handlers

func (h *Handler) createJobIssue(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal", "unauthorized"))
		return
	}

	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	var req struct {
		StageID     int      `json:"stage_id" binding:"required"`
		IssueType   string   `json:"issue_type" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Location    *string  `json:"location"`
		Severity    string   `json:"severity" binding:"required"`
		MediaURLs   []string `json:"media_urls"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	issue, err := h.issueService.Create(c.Request.Context(), principal, service.CreateIssueInput{
		JobID:       jobID,
		StageID:     req.StageID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Location:    req.Location,
		Severity:    req.Severity,
		MediaURLs:   req.MediaURLs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(issue))
}

func (h *Handler) listJobIssues(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	issues, err := h.issueService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(issues))
}

func (h *Handler) updateIssue(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal", "unauthorized"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid issue id", "validation"))
		return
	}

	var req struct {
		Status          *string  `json:"status"`
		Description     *string  `json:"description"`
		Severity        *string  `json:"severity"`
		ResolutionNotes *string  `json:"resolution_notes"`
		MediaURLs       []string `json:"media_urls"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	issue, err := h.issueService.Update(c.Request.Context(), principal, id, service.UpdateIssueInput{
		Status:          req.Status,
		Description:     req.Description,
		Severity:        req.Severity,
		ResolutionNotes: req.ResolutionNotes,
		MediaURLs:       req.MediaURLs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(issue))
}

func (h *Handler) deleteIssue(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid issue id", "validation"))
		return
	}

	if err := h.issueService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Usage handlers

func (h *Handler) createJobUsage(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	var req struct {
		PanelName    string  `json:"panel_name" binding:"required"`
		RollID       string  `json:"roll_id" binding:"required"`
		LengthUsedMm int     `json:"length_used_mm" binding:"required"`
		Notes        *string `json:"notes"`
		ImageURL     *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	usage, err := h.inventoryService.RecordUsage(c.Request.Context(), service.CreateUsageInput{
		JobID:        jobID,
		PanelName:    req.PanelName,
		RollID:       req.RollID,
		LengthUsedMm: req.LengthUsedMm,
		Notes:        req.Notes,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(usage))
}

func (h *Handler) listJobUsage(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("id"))
	if jobID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job id", "validation"))
		return
	}

	usages, err := h.inventoryService.ListUsageByJob(c.Request.Context(), jobID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(usages))
}

// Catalog handlers

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.catalogService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(users))
}

func (h *Handler) createUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	user, err := h.catalogService.CreateUser(c.Request.Context(), service.CreateUserInput{
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id", "validation"))
		return
	}

	if err := h.catalogService.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listPackages(c *gin.Context) {
	packages, err := h.catalogService.ListPackages(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(packages))
}

func (h *Handler) createPackage(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	pkg, err := h.catalogService.CreatePackage(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(pkg))
}

func (h *Handler) deletePackage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid package id", "validation"))
		return
	}

	if err := h.catalogService.DeletePackage(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Inventory handlers

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.inventoryService.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(products))
}

func (h *Handler) createProduct(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Brand   string `json:"brand" binding:"required"`
		Type    string `json:"type" binding:"required"`
		WidthMm int    `json:"width_mm" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:    req.Name,
		Brand:   req.Brand,
		Type:    req.Type,
		WidthMm: req.WidthMm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(product))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid product id", "validation"))
		return
	}

	if err := h.inventoryService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listRolls(c *gin.Context) {
	filter := repository.RollListFilter{}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		rs := model.RollStatus(strings.ToUpper(status))
		filter.Status = &rs
	}
	if productID := strings.TrimSpace(c.Query("product_id")); productID != "" {
		filter.ProductID = &productID
	}

	rolls, err := h.inventoryService.ListRolls(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rolls))
}

func (h *Handler) createRoll(c *gin.Context) {
	var req struct {
		RollID        string  `json:"roll_id" binding:"required"`
		ProductID     string  `json:"product_id" binding:"required"`
		BatchNo       *string `json:"batch_no"`
		TotalLengthMm int     `json:"total_length_mm" binding:"required"`
		ImageURL      *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	roll, err := h.inventoryService.CreateRoll(c.Request.Context(), service.CreateRollInput{
		RollID:        req.RollID,
		ProductID:     req.ProductID,
		BatchNo:       req.BatchNo,
		TotalLengthMm: req.TotalLengthMm,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(roll))
}

func (h *Handler) getRoll(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid roll id", "validation"))
		return
	}

	roll, err := h.inventoryService.GetRoll(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(roll))
}

func (h *Handler) patchRoll(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid roll id", "validation"))
		return
	}

	var req struct {
		Status   *string `json:"status"`
		BatchNo  *string `json:"batch_no"`
		ImageURL *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
		return
	}

	roll, err := h.inventoryService.PatchRoll(c.Request.Context(), id, service.PatchRollInput{
		Status:   req.Status,
		BatchNo:  req.BatchNo,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(roll))
}

func (h *Handler) deleteRoll(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid roll id", "validation"))
		return
	}

	if err := h.inventoryService.DeleteRoll(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Error mapping

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, workflow.ErrStageNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error(), "not_found"))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error(), "validation"))
	case errors.Is(err, workflow.ErrChecklistIncomplete):
		c.JSON(http.StatusConflict, errorResponse(err.Error(), "checklist_incomplete"))
	case errors.Is(err, workflow.ErrStageBoundary):
		c.JSON(http.StatusConflict, errorResponse(err.Error(), "stage_boundary"))
	case errors.Is(err, workflow.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, errorResponse(err.Error(), "invalid_state"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error(), "conflict"))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error", "internal"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message, kind string) gin.H {
	return gin.H{
		"error": message,
		"kind":  kind,
	}
}
