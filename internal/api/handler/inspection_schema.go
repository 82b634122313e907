package handler

// --- Request / Response types ---

type createInspectionRequest struct {
	CarLicensePlate string `json:"car_license_plate" validate:"required"`
	OwnerPhone      string `json:"owner_phone"       validate:"required"`
	InspectionDate  string `json:"inspection_date"   validate:"required,ddmmyyyy"`
	ExpiryDate      string `json:"expiry_date"       validate:"required,ddmmyyyy"`
	InspectorName   string `json:"inspector_name"    validate:"required"`
	InspectorPhone  string `json:"inspector_phone"   validate:"required"`
	CarKilometers   int    `json:"car_kilometers"    validate:"gte=0"`
}

// updateInspectionRequest is a partial update: nil fields were omitted by
// the caller and must not be touched.
type updateInspectionRequest struct {
	CarLicensePlate *string `json:"car_license_plate" validate:"omitempty"`
	OwnerPhone      *string `json:"owner_phone"       validate:"omitempty"`
	InspectionDate  *string `json:"inspection_date"   validate:"omitempty,ddmmyyyy"`
	ExpiryDate      *string `json:"expiry_date"       validate:"omitempty,ddmmyyyy"`
	InspectorName   *string `json:"inspector_name"    validate:"omitempty"`
	InspectorPhone  *string `json:"inspector_phone"   validate:"omitempty"`
	CarKilometers   *int    `json:"car_kilometers"    validate:"omitempty,gte=0"`
}

type messageResponse struct {
	Message string `json:"message"`
}
