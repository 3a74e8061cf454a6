package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
)

func TestResolveAssignments(t *testing.T) {
	users := []models.User{
		{UserID: "U-1", Username: "alice"},
		{UserID: "U-2", Username: "bob"},
	}
	assets := []models.Asset{
		{AssetID: "AST-1", AssetName: "Dell Latitude"},
	}
	assignments := []models.Assignment{
		{UserID: "U-1", AssetID: "AST-1"},
		{UserID: "U-2", AssetID: "AST-404"}, // dangling asset
		{UserID: "U-404", AssetID: "AST-1"}, // dangling user
	}

	got := ResolveAssignments(assignments, users, assets)
	require.Len(t, got, 3)

	assert.Equal(t, "alice", got[0].UserName)
	assert.Equal(t, "Dell Latitude", got[0].AssetName)

	assert.Equal(t, "bob", got[1].UserName)
	assert.Equal(t, UnknownAsset, got[1].AssetName)

	assert.Equal(t, UnknownUser, got[2].UserName)
	assert.Equal(t, "Dell Latitude", got[2].AssetName)
}

func TestResolveAssignmentsPreservesOrder(t *testing.T) {
	assignments := []models.Assignment{
		{UserID: "U-3", AssetID: "A-3"},
		{UserID: "U-1", AssetID: "A-1"},
		{UserID: "U-2", AssetID: "A-2"},
	}

	got := ResolveAssignments(assignments, nil, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "U-3", got[0].UserID)
	assert.Equal(t, "U-1", got[1].UserID)
	assert.Equal(t, "U-2", got[2].UserID)
}

func TestResolveAssignmentsEmptyBatch(t *testing.T) {
	got := ResolveAssignments(nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolvedAssignmentsThroughProjection(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	users := []models.User{{UserID: "U-1", Username: "alice"}}
	assets := []models.Asset{{AssetID: "AST-1", AssetName: "Dell Latitude"}}
	assignments := []models.Assignment{
		{UserID: "U-1", AssetID: "AST-1", Status: models.AssignmentStatusActive, DueDate: &due},
		{UserID: "U-9", AssetID: "AST-9", Status: models.AssignmentStatusReturned},
	}

	enriched := ResolveAssignments(assignments, users, assets)

	got := Project(enriched, Query{Search: "alice"}, AssignmentFields, AssignmentSearchKeys)
	require.Len(t, got, 1)
	assert.Equal(t, "U-1", got[0].UserID)

	got = Project(enriched, Query{Filters: map[string]string{"status": "returned"}}, AssignmentFields, AssignmentSearchKeys)
	require.Len(t, got, 1)
	assert.Equal(t, UnknownUser, got[0].UserName)
}
