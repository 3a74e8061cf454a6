package views

import (
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
)

// Search key sets are fixed per entity; they mirror the columns each list
// screen exposes in its search box.
var (
	AssetSearchKeys      = []string{"assetId", "assetName", "assetType", "model", "serialNumber", "location"}
	UserSearchKeys       = []string{"userId", "username", "email", "role", "department", "position"}
	AssignmentSearchKeys = []string{"userId", "assetId", "userName", "assetName", "notes"}
)

func AssetFields(a models.Asset) Fields {
	f := Fields{
		"assetId":      a.AssetID,
		"assetName":    a.AssetName,
		"assetType":    a.AssetType,
		"model":        a.Model,
		"serialNumber": a.SerialNumber,
		"location":     a.Location,
		"status":       a.Status,
		"assignedTo":   a.AssignedTo,
		"purchaseCost": a.PurchaseCost,
	}
	if a.PurchaseDate != nil {
		f["purchaseDate"] = *a.PurchaseDate
	}
	if a.WarrantyExpiry != nil {
		f["warrantyExpiry"] = *a.WarrantyExpiry
	}
	return f
}

func UserFields(u models.User) Fields {
	return Fields{
		"userId":     u.UserID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"department": u.Department,
		"position":   u.Position,
		"phone":      u.Phone,
		"status":     u.Status,
	}
}

func AssignmentFields(a EnrichedAssignment) Fields {
	f := Fields{
		"userId":         a.UserID,
		"assetId":        a.AssetID,
		"userName":       a.UserName,
		"assetName":      a.AssetName,
		"notes":          a.Notes,
		"status":         a.Status,
		"assignmentDate": a.AssignmentDate,
	}
	if a.DueDate != nil {
		f["dueDate"] = *a.DueDate
	}
	return f
}
