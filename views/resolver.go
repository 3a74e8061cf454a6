package views

import (
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
)

// Sentinel labels shown when an assignment references a user or asset
// that no longer exists.
const (
	UnknownUser  = "Unknown User"
	UnknownAsset = "Unknown Asset"
)

type EnrichedAssignment struct {
	models.Assignment
	UserName  string `json:"userName"`
	AssetName string `json:"assetName"`
}

// ResolveAssignments joins each assignment against the supplied user and
// asset collections by external identifier. Dangling references degrade to
// the sentinel labels; a bad row never fails the batch, and input order is
// preserved.
func ResolveAssignments(assignments []models.Assignment, users []models.User, assets []models.Asset) []EnrichedAssignment {
	enriched := make([]EnrichedAssignment, 0, len(assignments))
	for _, a := range assignments {
		e := EnrichedAssignment{
			Assignment: a,
			UserName:   UnknownUser,
			AssetName:  UnknownAsset,
		}
		for _, u := range users {
			if u.UserID == a.UserID {
				e.UserName = u.Username
				break
			}
		}
		for _, as := range assets {
			if as.AssetID == a.AssetID {
				e.AssetName = as.AssetName
				break
			}
		}
		enriched = append(enriched, e)
	}
	return enriched
}
