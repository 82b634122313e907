package handler

import (
	"github.com/roadworthy/pti-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createInspectionRequest) ports.CreateInspectionInput {
	return ports.CreateInspectionInput{
		CarLicensePlate: req.CarLicensePlate,
		OwnerPhone:      req.OwnerPhone,
		InspectionDate:  req.InspectionDate,
		ExpiryDate:      req.ExpiryDate,
		InspectorName:   req.InspectorName,
		InspectorPhone:  req.InspectorPhone,
		CarKilometers:   req.CarKilometers,
	}
}

func toUpdateInput(req updateInspectionRequest) ports.UpdateInspectionInput {
	return ports.UpdateInspectionInput{
		CarLicensePlate: req.CarLicensePlate,
		OwnerPhone:      req.OwnerPhone,
		InspectionDate:  req.InspectionDate,
		ExpiryDate:      req.ExpiryDate,
		InspectorName:   req.InspectorName,
		InspectorPhone:  req.InspectorPhone,
		CarKilometers:   req.CarKilometers,
	}
}
