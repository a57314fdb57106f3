package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
)

func SetupTodoRoutes(api fiber.Router, h *handlers.Handlers) {
	todos := api.Group("/todos")
	todos.Get("/", h.TodoHandler.ListTodos)
	todos.Post("/", h.TodoHandler.CreateTodo)
	todos.Patch("/:todoId", h.TodoHandler.UpdateTodo)
	todos.Put("/:todoId", h.TodoHandler.UpdateTodo)
	todos.Delete("/:todoId", h.TodoHandler.DeleteTodo)
	todos.Post("/:todoId/attachment", h.TodoHandler.AttachFile)
}
