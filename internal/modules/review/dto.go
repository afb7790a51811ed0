package review

type CreateReviewRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment"`
}
