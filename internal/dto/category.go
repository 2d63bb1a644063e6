package dto

import "github.com/SscSPs/finance_manager/internal/core/domain"

// CreateCategoryRequest defines the data needed to add a category.
type CreateCategoryRequest struct {
	Type string `json:"type" example:"expense"`
	Name string `json:"name" example:"Utilities"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: string(c.Type), Name: c.Name}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return out
}
