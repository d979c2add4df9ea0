package response

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type TokenResponse struct {
	Token       string  `json:"token"`
	UserID      uint    `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Role        *string `json:"role"`
}

// FormView is the canonical API shape of a form; ApprovalFlags keeps
// the legacy bit encoding (developer=1, client=2).
type FormView struct {
	ID            uint    `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Message       string  `json:"message,omitempty"`
	Budget        string  `json:"budget,omitempty"`
	ExpectedTime  string  `json:"expected_time,omitempty"`
	Status        string  `json:"status"`
	ApprovalFlags int     `json:"approval_flags"`
	UserID        uint    `json:"user_id"`
	DeveloperID   *uint   `json:"developer_id"`
	SubformID     *uint   `json:"subform_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
}

type FormListResponse struct {
	Forms    []FormView `json:"forms"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int64      `json:"total"`
}

type TransitionResponse struct {
	Status        string `json:"status"`
	ApprovalFlags int    `json:"approval_flags"`
	Committed     bool   `json:"committed"`
}
