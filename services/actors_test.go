package services

import (
	"fmt"
	"testing"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openActorDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	return db
}

func TestResolveRealtorCreatesWithDefaults(t *testing.T) {
	db := openActorDB(t)
	identity := &utils.Identity{UID: "uid-new", Email: "new@example.com", Name: "New Seller"}

	realtor, err := ResolveRealtor(db, identity, RealtorHints{})
	require.NoError(t, err)

	assert.Equal(t, "uid-new", realtor.RealtorID)
	assert.Equal(t, "New Seller", realtor.CompanyName)
	assert.Equal(t, "new@example.com", realtor.CompanyMail)
	assert.Equal(t, "Property seller", realtor.Description)
	assert.NotEmpty(t, realtor.ID)
	assert.NotEqual(t, identity.UID, realtor.ID)
}

func TestResolveRealtorAnonymousIdentity(t *testing.T) {
	db := openActorDB(t)

	realtor, err := ResolveRealtor(db, &utils.Identity{UID: "uid-anon"}, RealtorHints{})
	require.NoError(t, err)
	assert.Equal(t, "Seller", realtor.CompanyName)
}

func TestResolveRealtorHintsOverrideTokenDefaults(t *testing.T) {
	db := openActorDB(t)
	identity := &utils.Identity{UID: "uid-hints", Email: "token@example.com", Name: "Token Name"}

	realtor, err := ResolveRealtor(db, identity, RealtorHints{
		CompanyName: "Acme Estates",
		CompanyMail: "sales@acme.example",
		Contact:     "+254700",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Estates", realtor.CompanyName)
	assert.Equal(t, "sales@acme.example", realtor.CompanyMail)
	assert.Equal(t, "+254700", realtor.Contact)
}

func TestResolveRealtorIsIdempotent(t *testing.T) {
	db := openActorDB(t)
	identity := &utils.Identity{UID: "uid-idem", Email: "idem@example.com"}

	first, err := ResolveRealtor(db, identity, RealtorHints{})
	require.NoError(t, err)
	second, err := ResolveRealtor(db, identity, RealtorHints{})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	var count int64
	db.Model(&models.Realtor{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveRealtorAppliesHintsLastWriteWins(t *testing.T) {
	db := openActorDB(t)
	identity := &utils.Identity{UID: "uid-lww", Email: "lww@example.com"}

	_, err := ResolveRealtor(db, identity, RealtorHints{CompanyName: "First Name"})
	require.NoError(t, err)

	realtor, err := ResolveRealtor(db, identity, RealtorHints{
		CompanyName: "Second Name",
		Contact:     "+111",
	})
	require.NoError(t, err)
	assert.Equal(t, "Second Name", realtor.CompanyName)
	assert.Equal(t, "+111", realtor.Contact)

	// Blank hints leave existing values alone.
	realtor, err = ResolveRealtor(db, identity, RealtorHints{})
	require.NoError(t, err)
	assert.Equal(t, "Second Name", realtor.CompanyName)
}

func TestResolveRealtorCreateConflictReReads(t *testing.T) {
	db := openActorDB(t)
	identity := &utils.Identity{UID: "uid-race", Email: "race@example.com"}

	// Simulate the losing side of a create/create race: the row appears
	// after the initial lookup would have missed it.
	winner := &models.Realtor{RealtorID: "uid-race", CompanyName: "Winner"}
	require.NoError(t, db.Create(winner).Error)

	realtor, err := ResolveRealtor(db, identity, RealtorHints{})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, realtor.ID)
}

func TestLookupRealtorDoesNotCreate(t *testing.T) {
	db := openActorDB(t)

	_, err := LookupRealtor(db, "uid-missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.Realtor{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLookupVendor(t *testing.T) {
	db := openActorDB(t)

	vendor := &models.Vendor{VendorID: "uid-vendor", CompanyName: "Pipes"}
	require.NoError(t, db.Create(vendor).Error)

	found, err := LookupVendor(db, "uid-vendor")
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, found.ID)

	_, err = LookupVendor(db, "uid-nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
