package dto

type CreateListingRequest struct {
	OwnerID        string `json:"owner_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	MissionDate    string `json:"mission_date" binding:"required"`
	AvailableSlots *int   `json:"available_slots" binding:"omitempty,min=0"`
	OwnerChatID    *int64 `json:"owner_chat_id"`
}

type CreateReservationRequest struct {
	ActorID      string `json:"actor_id" binding:"required"`
	ActorName    string `json:"actor_name" binding:"required"`
	ActorContact string `json:"actor_contact"`
	Message      string `json:"message"`
}

type UpdateStatusRequest struct {
	Status       string  `json:"status" binding:"required"`
	OwnerComment *string `json:"owner_comment"`
}
