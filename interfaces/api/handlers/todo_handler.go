package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.todoService.ListTodos(ctx, user.ID)
	if err != nil {
		return serviceErrorResponse(c, err, "List todos")
	}

	return utils.SuccessResponse(c, dto.TodosToTodoResponses(items))
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	item, err := h.todoService.CreateTodo(ctx, user.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err, "Create todo")
	}

	return utils.CreatedResponse(c, dto.TodoToTodoResponse(item))
}

func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todoID, ok := todoIDParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.todoService.UpdateTodo(ctx, user.ID, todoID, dto.UpdateTodoRequestToTodoUpdate(&req)); err != nil {
		return serviceErrorResponse(c, err, "Update todo")
	}

	return utils.NoContentResponse(c)
}

func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todoID, ok := todoIDParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	if err := h.todoService.DeleteTodo(ctx, user.ID, todoID); err != nil {
		return serviceErrorResponse(c, err, "Delete todo")
	}

	return utils.NoContentResponse(c)
}

// AttachFile ผูก attachment ที่อัปโหลดแล้วเข้ากับ todo
func (h *TodoHandler) AttachFile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todoID, ok := todoIDParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	var req dto.AttachFileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.todoService.AttachFile(ctx, user.ID, todoID, req.AttachmentID); err != nil {
		return serviceErrorResponse(c, err, "Attach file")
	}

	return utils.NoContentResponse(c)
}

func todoIDParam(c *fiber.Ctx) (string, bool) {
	param := dto.TodoIDParam{TodoID: c.Params("todoId")}
	if err := utils.ValidateStruct(&param); err != nil {
		logger.WarnContext(c.UserContext(), "Invalid todo ID", "todo_id", param.TodoID)
		return "", false
	}
	return param.TodoID, true
}
