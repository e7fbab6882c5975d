package request

type StartBookingRequest struct {
	PackageID int `json:"packageId" validate:"required,min=1"`
}
