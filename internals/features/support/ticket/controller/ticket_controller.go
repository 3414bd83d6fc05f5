package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/constants"
	ticketDTO "vatplatform_backend/internals/features/support/ticket/dto"
	ticketModel "vatplatform_backend/internals/features/support/ticket/model"
	helper "vatplatform_backend/internals/helpers"
)

type TicketController struct {
	DB *gorm.DB
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db}
}

// Create opens a support ticket for the authenticated user. Tickets
// always start in the open state regardless of the request body.
func (ctl *TicketController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req ticketDTO.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	fieldErrors := map[string][]string{}
	if req.Subject == "" {
		fieldErrors["subject"] = append(fieldErrors["subject"], "Subject is required")
	}
	if req.Description == "" {
		fieldErrors["description"] = append(fieldErrors["description"], "Description is required")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	ticket := ticketModel.SupportTicketModel{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      ticketModel.StatusOpen,
	}
	if err := ctl.DB.Create(&ticket).Error; err != nil {
		logrus.WithError(err).Error("tickets: create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ticket")
	}

	return helper.JsonCreated(c, "Ticket created", ticket)
}

// List returns the caller's tickets, or every ticket for SuperAdmin.
func (ctl *TicketController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&ticketModel.SupportTicketModel{})
	if !constants.CanSeeAllRecords(role) {
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("tickets: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var tickets []ticketModel.SupportTicketModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&tickets).Error; err != nil {
		logrus.WithError(err).Error("tickets: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", tickets, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
