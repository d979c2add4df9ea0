package dto

type CreateFormDTO struct {
	Title        string `json:"title" binding:"required"`
	Message      string `json:"message" binding:"required"`
	Budget       string `json:"budget" binding:"required"`
	ExpectedTime string `json:"expected_time" binding:"required"`
}

type UpdateFormDTO struct {
	Title        *string `json:"title"`
	Message      *string `json:"message"`
	Budget       *string `json:"budget"`
	ExpectedTime *string `json:"expected_time"`
}

type UpdateFormStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
