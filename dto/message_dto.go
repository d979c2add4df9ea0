package dto

type CreateBlockDTO struct {
	Type     string `json:"type" binding:"required,oneof=general function nonfunction"`
	TargetID *uint  `json:"target_id"`
	Priority string `json:"priority" binding:"omitempty,oneof=urgent normal"`
}

type CreateMessageDTO struct {
	TextContent string `json:"text_content" binding:"required"`
}

type UpdateMessageDTO struct {
	TextContent string `json:"text_content" binding:"required"`
}
