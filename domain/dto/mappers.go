package dto

import (
	"todo-backend/domain/models"
)

func TodoToTodoResponse(item *models.TodoItem) *TodoResponse {
	if item == nil {
		return nil
	}
	return &TodoResponse{
		TodoID:        item.TodoID,
		UserID:        item.UserID,
		CreatedAt:     item.CreatedAt,
		Name:          item.Name,
		DueDate:       item.DueDate,
		Done:          item.Done,
		AttachmentURL: item.AttachmentURL,
	}
}

func TodosToTodoResponses(items []*models.TodoItem) []TodoResponse {
	responses := make([]TodoResponse, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		responses = append(responses, *TodoToTodoResponse(item))
	}
	return responses
}

func UpdateTodoRequestToTodoUpdate(req *UpdateTodoRequest) models.TodoUpdate {
	if req == nil {
		return models.TodoUpdate{}
	}
	return models.TodoUpdate{
		Name:    req.Name,
		DueDate: req.DueDate,
		Done:    req.Done,
	}
}
