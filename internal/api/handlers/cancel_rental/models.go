package cancel_rental

// CancelRentalRequest HTTP request model
type CancelRentalRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
