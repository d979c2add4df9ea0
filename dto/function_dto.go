package dto

type CreateFunctionDTO struct {
	Name        string `json:"name" binding:"required"`
	Choice      string `json:"choice" binding:"required,oneof=lightweight commercial enterprise"`
	Description string `json:"description" binding:"required"`
}

type UpdateFunctionDTO struct {
	Name        *string `json:"name"`
	Choice      *string `json:"choice" binding:"omitempty,oneof=lightweight commercial enterprise"`
	Description *string `json:"description"`
	Changed     *bool   `json:"is_changed"`
}

type CreateNonFunctionDTO struct {
	Name        string `json:"name" binding:"required"`
	Level       string `json:"level" binding:"required,oneof=basic standard strict"`
	Description string `json:"description" binding:"required"`
}

type UpdateNonFunctionDTO struct {
	Name        *string `json:"name"`
	Level       *string `json:"level" binding:"omitempty,oneof=basic standard strict"`
	Description *string `json:"description"`
	Changed     *bool   `json:"is_changed"`
}
