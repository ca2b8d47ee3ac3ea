// Package handler contains the HTTP handlers for the application.
package handler

import "tasklist/internal/domain/entity"

// --- Response DTOs ---
// Successful responses are these plain shapes; the password hash and other
// internal fields never leave the service.

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type taskResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	ListID    int64  `json:"list_id"`
}

type listResponse struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	UserID int64          `json:"user_id"`
	Tasks  []taskResponse `json:"tasks"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		ListID:    task.ListID,
	}
}

// toTaskResponses always returns a non-nil slice; an empty collection
// serializes as [] rather than null.
func toTaskResponses(tasks []*entity.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return out
}

func toListResponse(list *entity.List) listResponse {
	return listResponse{
		ID:     list.ID,
		Name:   list.Name,
		UserID: list.UserID,
		Tasks:  toTaskResponses(list.Tasks),
	}
}

func toListResponses(lists []*entity.List) []listResponse {
	out := make([]listResponse, 0, len(lists))
	for _, list := range lists {
		out = append(out, toListResponse(list))
	}

	return out
}
