package dto

type CreateChallengeRequest struct {
	Title           string  `json:"title" validate:"required,min=5,max=100"`
	Description     *string `json:"description"`
	StartDate       string  `json:"start_date" validate:"required"`
	EndDate         string  `json:"end_date" validate:"required"`
	IsPublic        *bool   `json:"is_public"`
	MaxParticipants *int    `json:"max_participants" validate:"omitempty,min=2"`
}
