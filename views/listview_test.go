package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
)

func testAssets() []models.Asset {
	return []models.Asset{
		{AssetID: "AST-1", AssetName: "Dell Latitude", AssetType: "Laptop", Location: "Head Office", Status: models.AssetStatusActive, PurchaseCost: 1200},
		{AssetID: "AST-2", AssetName: "HP EliteBook", AssetType: "Laptop", Location: "Branch Office", Status: models.AssetStatusActive, PurchaseCost: 900},
		{AssetID: "AST-3", AssetName: "Cisco Switch", AssetType: "Network Equipment", Location: "Head Office", Status: models.AssetStatusRetired, PurchaseCost: 3000},
	}
}

func assetIDs(assets []models.Asset) []string {
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.AssetID
	}
	return ids
}

func TestProjectSearchCaseInsensitive(t *testing.T) {
	got := Project(testAssets(), Query{Search: "dell"}, AssetFields, AssetSearchKeys)
	require.Len(t, got, 1)
	assert.Equal(t, "AST-1", got[0].AssetID)
}

func TestProjectSearchToleratesMissingFields(t *testing.T) {
	// model and serial number are absent; searching must not blow up and
	// the populated fields must still match
	items := []models.Asset{{AssetID: "AST-1", AssetName: "Dell"}}
	got := Project(items, Query{Search: "dell"}, AssetFields, AssetSearchKeys)
	require.Len(t, got, 1)

	got = Project(items, Query{Search: "thinkpad"}, AssetFields, AssetSearchKeys)
	assert.Empty(t, got)
}

func TestProjectFilterPreservesInputOrder(t *testing.T) {
	items := []models.Asset{
		{AssetID: "A", Status: models.AssetStatusActive},
		{AssetID: "B", Status: models.AssetStatusActive},
		{AssetID: "C", Status: models.AssetStatusRetired},
	}
	got := Project(items, Query{Filters: map[string]string{"status": "Active"}}, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"A", "B"}, assetIDs(got))
}

func TestProjectFilterAllMeansUnconstrained(t *testing.T) {
	got := Project(testAssets(), Query{Filters: map[string]string{"status": FilterAll, "location": "Head Office"}}, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-1", "AST-3"}, assetIDs(got))
}

func TestProjectSortAscendingAndDescending(t *testing.T) {
	q := Query{Sort: Sort{Key: "assetName", Direction: Ascending}}
	got := Project(testAssets(), q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-3", "AST-1", "AST-2"}, assetIDs(got))

	q.Sort.Direction = Descending
	got = Project(testAssets(), q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-2", "AST-1", "AST-3"}, assetIDs(got))
}

func TestProjectSortNumeric(t *testing.T) {
	q := Query{Sort: Sort{Key: "purchaseCost", Direction: Ascending}}
	got := Project(testAssets(), q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-2", "AST-1", "AST-3"}, assetIDs(got))
}

func TestProjectSortIsStable(t *testing.T) {
	items := []models.Asset{
		{AssetID: "A", AssetType: "Laptop"},
		{AssetID: "B", AssetType: "Laptop"},
		{AssetID: "C", AssetType: "Desktop"},
		{AssetID: "D", AssetType: "Laptop"},
	}
	q := Query{Sort: Sort{Key: "assetType", Direction: Ascending}}
	got := Project(items, q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"C", "A", "B", "D"}, assetIDs(got))
}

func TestProjectUnknownSortKeyIsNoOp(t *testing.T) {
	q := Query{Sort: Sort{Key: "nonexistent", Direction: Ascending}}
	got := Project(testAssets(), q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-1", "AST-2", "AST-3"}, assetIDs(got))
}

func TestProjectIdempotent(t *testing.T) {
	q := Query{
		Search:  "office",
		Filters: map[string]string{"status": "Active"},
		Sort:    Sort{Key: "assetId", Direction: Descending},
	}
	once := Project(testAssets(), q, AssetFields, AssetSearchKeys)
	twice := Project(once, q, AssetFields, AssetSearchKeys)
	assert.Equal(t, assetIDs(once), assetIDs(twice))
}

func TestProjectEmptyInput(t *testing.T) {
	got := Project([]models.Asset{}, Query{Search: "x"}, AssetFields, AssetSearchKeys)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	items := testAssets()
	q := Query{Sort: Sort{Key: "assetName", Direction: Descending}}
	_ = Project(items, q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"AST-1", "AST-2", "AST-3"}, assetIDs(items))
}

func TestProjectSortTimes(t *testing.T) {
	d1 := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	items := []models.Asset{
		{AssetID: "NEW", PurchaseDate: &d2},
		{AssetID: "OLD", PurchaseDate: &d1},
		{AssetID: "NONE"}, // missing date sorts first
	}
	q := Query{Sort: Sort{Key: "purchaseDate", Direction: Ascending}}
	got := Project(items, q, AssetFields, AssetSearchKeys)
	assert.Equal(t, []string{"NONE", "OLD", "NEW"}, assetIDs(got))
}

func TestProjectUserView(t *testing.T) {
	users := []models.User{
		{UserID: "U-1", Username: "alice", Email: "alice@corp.io", Role: models.RoleAdmin, Status: models.UserStatusActive},
		{UserID: "U-2", Username: "bob", Email: "bob@corp.io", Role: models.RoleEmployee, Status: models.UserStatusActive, Department: "Finance"},
		{UserID: "U-3", Username: "carol", Email: "carol@corp.io", Role: models.RoleEmployee, Status: models.UserStatusSuspended},
	}

	got := Project(users, Query{Filters: map[string]string{"role": "employee"}}, UserFields, UserSearchKeys)
	require.Len(t, got, 2)

	got = Project(users, Query{Search: "FINANCE"}, UserFields, UserSearchKeys)
	require.Len(t, got, 1)
	assert.Equal(t, "U-2", got[0].UserID)
}
