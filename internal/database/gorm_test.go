package database

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store := NewGormStoreFromDB(db)
	if err := store.InitSchema(); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func activeProperty(owner, city string, price float64) *models.Property {
	bed := 3
	bath := 2.0
	sqft := 1500
	lat, lng := 45.42, -75.69
	return &models.Property{
		OwnerID:      owner,
		Title:        fmt.Sprintf("Listing in %s", city),
		Description:  "A lovely place",
		PropertyType: models.PropertyTypeHouse,
		ListingType:  models.ListingTypeSale,
		Status:       models.PropertyStatusActive,
		Price:        price,
		Address:      "1 Main Street",
		City:         city,
		State:        "ON",
		Country:      "CA",
		Latitude:     &lat,
		Longitude:    &lng,
		Bedrooms:     &bed,
		Bathrooms:    &bath,
		Sqft:         &sqft,
		Amenities:    []string{"Garage", "Garden"},
	}
}

func mustCreate(t *testing.T, store *GormStore, p *models.Property) *models.Property {
	t.Helper()
	if err := store.CreateProperty(p); err != nil {
		t.Fatalf("CreateProperty() error = %v", err)
	}
	return p
}

func parseFilters(t *testing.T, query string) search.Filters {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", query, err)
	}
	f, err := search.ParseFilters(values)
	if err != nil {
		t.Fatalf("ParseFilters(%q) error = %v", query, err)
	}
	return f
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	store := newTestStore(t)

	mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))
	expensive := activeProperty("owner-1", "Ottawa", 900000)
	mustCreate(t, store, expensive)
	mustCreate(t, store, activeProperty("owner-1", "Toronto", 900000))

	results, total, err := store.SearchProperties(parseFilters(t, "city=Ottawa&min_price=800000"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 1 || len(results) != 1 {
		t.Fatalf("total = %d, len = %d, want 1, 1", total, len(results))
	}
	if results[0].ID != expensive.ID {
		t.Errorf("got %s, want %s", results[0].ID, expensive.ID)
	}
}

func TestOwnerPropertiesFilterAcrossStatuses(t *testing.T) {
	store := newTestStore(t)

	draft := activeProperty("owner-1", "Ottawa", 400000)
	draft.Status = models.PropertyStatusDraft
	mustCreate(t, store, draft)
	mustCreate(t, store, activeProperty("owner-1", "Ottawa", 700000))
	mustCreate(t, store, activeProperty("owner-2", "Ottawa", 700000))

	all, err := store.OwnerProperties("owner-1", search.Filters{})
	if err != nil {
		t.Fatalf("OwnerProperties() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2 (drafts visible to their owner)", len(all))
	}

	cheap, err := store.OwnerProperties("owner-1", parseFilters(t, "max_price=500000"))
	if err != nil {
		t.Fatalf("OwnerProperties() error = %v", err)
	}
	if len(cheap) != 1 || cheap[0].ID != draft.ID {
		t.Errorf("filtered results = %v, want only the draft", cheap)
	}
}

func TestSearchCityMatchesSubstring(t *testing.T) {
	store := newTestStore(t)

	mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))
	mustCreate(t, store, activeProperty("owner-1", "Toronto", 500000))

	_, total, err := store.SearchProperties(parseFilters(t, "city=ott"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 1 {
		t.Errorf("city=ott total = %d, want 1 (partial, case-insensitive match)", total)
	}

	_, total, err = store.SearchProperties(parseFilters(t, "state=on"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 2 {
		t.Errorf("state=on total = %d, want 2", total)
	}
}

func TestSearchExcludesInactive(t *testing.T) {
	store := newTestStore(t)

	draft := activeProperty("owner-1", "Ottawa", 400000)
	draft.Status = models.PropertyStatusDraft
	mustCreate(t, store, draft)
	sold := activeProperty("owner-1", "Ottawa", 400000)
	sold.Status = models.PropertyStatusSold
	mustCreate(t, store, sold)
	mustCreate(t, store, activeProperty("owner-1", "Ottawa", 400000))

	_, total, err := store.SearchProperties(parseFilters(t, ""))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 (drafts and sold listings hidden)", total)
	}
}

func TestSearchTextMatchesAnyField(t *testing.T) {
	store := newTestStore(t)

	inTitle := activeProperty("owner-1", "Ottawa", 500000)
	inTitle.Title = "Charming Victorian near the canal"
	mustCreate(t, store, inTitle)

	inAddress := activeProperty("owner-1", "Toronto", 500000)
	inAddress.Address = "88 Victorian Avenue"
	mustCreate(t, store, inAddress)

	unrelated := activeProperty("owner-1", "Calgary", 500000)
	unrelated.Title = "Modern bungalow"
	unrelated.Description = "Nothing to see"
	unrelated.Address = "9 Elm Street"
	mustCreate(t, store, unrelated)

	_, total, err := store.SearchProperties(parseFilters(t, "query=victorian"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2 (case-insensitive match on title or address)", total)
	}
}

func TestSearchAmenitySuperset(t *testing.T) {
	store := newTestStore(t)

	both := activeProperty("owner-1", "Ottawa", 500000)
	both.Amenities = []string{"Pool", "Garage", "Garden"}
	mustCreate(t, store, both)

	onlyPool := activeProperty("owner-1", "Ottawa", 500000)
	onlyPool.Amenities = []string{"Pool"}
	mustCreate(t, store, onlyPool)

	none := activeProperty("owner-1", "Ottawa", 500000)
	none.Amenities = nil
	mustCreate(t, store, none)

	results, total, err := store.SearchProperties(parseFilters(t, "amenities=Pool,Garage"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1 (must carry every requested amenity)", total)
	}
	if results[0].ID != both.ID {
		t.Errorf("got %s, want %s", results[0].ID, both.ID)
	}
}

func TestSearchPagination(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 25; i++ {
		p := activeProperty("owner-1", "Ottawa", float64(100000+i*1000))
		mustCreate(t, store, p)
	}

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		results, total, err := store.SearchProperties(parseFilters(t, fmt.Sprintf("page=%d&limit=12&sort=price_asc", page)))
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if total != 25 {
			t.Fatalf("total = %d, want 25", total)
		}
		for _, p := range results {
			if seen[p.ID] {
				t.Fatalf("listing %s appeared on two pages", p.ID)
			}
			seen[p.ID] = true
		}
	}
	if len(seen) != 25 {
		t.Errorf("pages covered %d listings, want 25", len(seen))
	}

	empty, _, err := store.SearchProperties(parseFilters(t, "page=4&limit=12"))
	if err != nil {
		t.Fatalf("page past the end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("page past the end returned %d rows, want 0", len(empty))
	}
}

func TestSearchBounds(t *testing.T) {
	store := newTestStore(t)

	inside := activeProperty("owner-1", "Ottawa", 500000)
	mustCreate(t, store, inside)

	outside := activeProperty("owner-1", "Ottawa", 500000)
	lat, lng := 51.05, -114.07
	outside.Latitude = &lat
	outside.Longitude = &lng
	mustCreate(t, store, outside)

	noCoords := activeProperty("owner-1", "Ottawa", 500000)
	noCoords.Latitude = nil
	noCoords.Longitude = nil
	mustCreate(t, store, noCoords)

	results, total, err := store.SearchProperties(parseFilters(t, "north=46&south=45&east=-75&west=-76"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if total != 1 || results[0].ID != inside.ID {
		t.Errorf("bounds query returned %d rows, want only the listing inside the box", total)
	}
}

func TestSearchSortStability(t *testing.T) {
	store := newTestStore(t)

	// Same price on every row forces the id tie-break.
	for i := 0; i < 5; i++ {
		mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))
	}

	first, _, err := store.SearchProperties(parseFilters(t, "sort=price_asc"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	second, _, err := store.SearchProperties(parseFilters(t, "sort=price_asc"))
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order changed between identical queries at position %d", i)
		}
	}
}

func TestPropertyHydration(t *testing.T) {
	store := newTestStore(t)

	p := activeProperty("owner-1", "Ottawa", 500000)
	p.Amenities = []string{"Pool", "Gym"}
	p.Images = []string{"https://img.test/1.jpg", "https://img.test/2.jpg"}
	mustCreate(t, store, p)

	got, err := store.GetProperty(p.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if len(got.Amenities) != 2 || got.Amenities[0] != "Pool" {
		t.Errorf("Amenities = %v", got.Amenities)
	}
	if len(got.Images) != 2 || got.Images[0] != "https://img.test/1.jpg" {
		t.Errorf("Images = %v", got.Images)
	}
}

func TestUpdatePropertyReplacesAmenities(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	got, err := store.UpdateProperty(p.ID, map[string]interface{}{"price": 600000.0}, []string{"Pool"}, nil)
	if err != nil {
		t.Fatalf("UpdateProperty() error = %v", err)
	}
	if got.Price != 600000 {
		t.Errorf("Price = %f, want 600000", got.Price)
	}
	if len(got.Amenities) != 1 || got.Amenities[0] != "Pool" {
		t.Errorf("Amenities = %v, want [Pool]", got.Amenities)
	}

	if _, err := store.UpdateProperty("missing", map[string]interface{}{"price": 1.0}, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing listing: err = %v, want ErrNotFound", err)
	}
}

func TestDeletePropertyCascades(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	if err := store.SaveListing("buyer-1", p.ID); err != nil {
		t.Fatalf("SaveListing() error = %v", err)
	}
	if err := store.DeleteProperty(p.ID); err != nil {
		t.Fatalf("DeleteProperty() error = %v", err)
	}
	if _, err := store.GetProperty(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProperty after delete: err = %v, want ErrNotFound", err)
	}
	saved, err := store.ListSaved("buyer-1")
	if err != nil {
		t.Fatalf("ListSaved() error = %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("saved rows survived property deletion: %d", len(saved))
	}

	if err := store.DeleteProperty(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestImageAppendAndRemove(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	if err := store.AppendPropertyImages(p.ID, []string{"https://img.test/a.jpg"}); err != nil {
		t.Fatalf("AppendPropertyImages() error = %v", err)
	}
	if err := store.AppendPropertyImages(p.ID, []string{"https://img.test/b.jpg"}); err != nil {
		t.Fatalf("AppendPropertyImages() error = %v", err)
	}

	got, err := store.GetProperty(p.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if len(got.Images) != 2 || got.Images[0] != "https://img.test/a.jpg" || got.Images[1] != "https://img.test/b.jpg" {
		t.Fatalf("Images = %v, want append order preserved", got.Images)
	}

	if err := store.RemovePropertyImage(p.ID, "https://img.test/a.jpg"); err != nil {
		t.Fatalf("RemovePropertyImage() error = %v", err)
	}
	if err := store.RemovePropertyImage(p.ID, "https://img.test/a.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove: err = %v, want ErrNotFound", err)
	}

	if err := store.AppendPropertyImages("missing", []string{"x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("append to missing listing: err = %v, want ErrNotFound", err)
	}
}

func TestAppendImagesEnforcesCeiling(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	batch := make([]string, MaxImagesPerProperty)
	for i := range batch {
		batch[i] = fmt.Sprintf("https://img.test/%d.jpg", i)
	}
	if err := store.AppendPropertyImages(p.ID, batch); err != nil {
		t.Fatalf("AppendPropertyImages() error = %v", err)
	}

	if err := store.AppendPropertyImages(p.ID, []string{"https://img.test/over.jpg"}); !errors.Is(err, ErrTooManyImages) {
		t.Fatalf("append past ceiling: err = %v, want ErrTooManyImages", err)
	}

	got, err := store.GetProperty(p.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if len(got.Images) != MaxImagesPerProperty {
		t.Errorf("len(Images) = %d, want %d (rejected batch must not partially apply)", len(got.Images), MaxImagesPerProperty)
	}
}

func TestSaveListingDuplicate(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	if err := store.SaveListing("buyer-1", p.ID); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.SaveListing("buyer-1", p.ID); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second save: err = %v, want ErrDuplicate", err)
	}
	// Unsave never errors, even when nothing is there.
	if err := store.UnsaveListing("buyer-1", p.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if err := store.UnsaveListing("buyer-1", p.ID); err != nil {
		t.Errorf("second unsave: err = %v, want nil", err)
	}
}

func TestEnquiryRoleScoping(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))
	other := mustCreate(t, store, activeProperty("owner-2", "Ottawa", 500000))

	for _, e := range []*models.Enquiry{
		{PropertyID: p.ID, SenderID: "buyer-1", OwnerID: "owner-1", Message: "Is it available?"},
		{PropertyID: p.ID, SenderID: "buyer-2", OwnerID: "owner-1", Message: "Can I visit?"},
		{PropertyID: other.ID, SenderID: "buyer-1", OwnerID: "owner-2", Message: "Price negotiable?"},
	} {
		if err := store.CreateEnquiry(e); err != nil {
			t.Fatalf("CreateEnquiry() error = %v", err)
		}
	}

	cases := []struct {
		viewer models.Viewer
		want   int
	}{
		{models.Viewer{UserID: "buyer-1", Role: models.RoleBuyer}, 2},
		{models.Viewer{UserID: "buyer-2", Role: models.RoleBuyer}, 1},
		{models.Viewer{UserID: "owner-1", Role: models.RoleOwner}, 2},
		{models.Viewer{UserID: "owner-2", Role: models.RoleOwner}, 1},
		{models.Viewer{UserID: "admin-1", Role: models.RoleAdmin}, 3},
	}
	for _, tc := range cases {
		got, err := store.ListEnquiries(tc.viewer)
		if err != nil {
			t.Fatalf("ListEnquiries(%s) error = %v", tc.viewer.Role, err)
		}
		if len(got) != tc.want {
			t.Errorf("ListEnquiries(%s/%s) = %d rows, want %d", tc.viewer.Role, tc.viewer.UserID, len(got), tc.want)
		}
	}
}

func TestPurgeArchivedEnquiries(t *testing.T) {
	store := newTestStore(t)
	p := mustCreate(t, store, activeProperty("owner-1", "Ottawa", 500000))

	archived := &models.Enquiry{PropertyID: p.ID, SenderID: "buyer-1", OwnerID: "owner-1", Message: "old"}
	if err := store.CreateEnquiry(archived); err != nil {
		t.Fatalf("CreateEnquiry() error = %v", err)
	}
	if err := store.UpdateEnquiryStatus(archived.ID, models.EnquiryStatusArchived); err != nil {
		t.Fatalf("UpdateEnquiryStatus() error = %v", err)
	}
	fresh := &models.Enquiry{PropertyID: p.ID, SenderID: "buyer-2", OwnerID: "owner-1", Message: "new"}
	if err := store.CreateEnquiry(fresh); err != nil {
		t.Fatalf("CreateEnquiry() error = %v", err)
	}

	purged, err := store.PurgeArchivedEnquiries(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PurgeArchivedEnquiries() error = %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}
	if _, err := store.GetEnquiry(fresh.ID); err != nil {
		t.Errorf("unarchived enquiry was purged: %v", err)
	}
}

func TestProfilesAndStats(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertProfile(&models.Profile{UserID: "u1", FullName: "Dana Smith"}); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
	got, err := store.GetProfile("u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.Role != models.RoleBuyer {
		t.Errorf("default role = %s, want buyer", got.Role)
	}

	if err := store.SetRole("u1", models.RoleOwner); err != nil {
		t.Fatalf("SetRole() error = %v", err)
	}
	got, _ = store.GetProfile("u1")
	if got.Role != models.RoleOwner {
		t.Errorf("role = %s, want owner", got.Role)
	}

	mustCreate(t, store, activeProperty("u1", "Ottawa", 500000))
	draft := activeProperty("u1", "Ottawa", 500000)
	draft.Status = models.PropertyStatusDraft
	mustCreate(t, store, draft)

	stats, err := store.PlatformStats()
	if err != nil {
		t.Fatalf("PlatformStats() error = %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalListings != 2 || stats.ActiveListings != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStatsSnapshotUpsert(t *testing.T) {
	store := newTestStore(t)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := store.SaveStatsSnapshot(&models.StatsSnapshot{SnapshotAt: day, TotalUsers: 5}); err != nil {
		t.Fatalf("SaveStatsSnapshot() error = %v", err)
	}
	if err := store.SaveStatsSnapshot(&models.StatsSnapshot{SnapshotAt: day, TotalUsers: 8}); err != nil {
		t.Fatalf("second SaveStatsSnapshot() error = %v", err)
	}

	snaps, err := store.RecentStatsSnapshots(10)
	if err != nil {
		t.Fatalf("RecentStatsSnapshots() error = %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("len = %d, want 1 (same day overwrites)", len(snaps))
	}
	if snaps[0].TotalUsers != 8 {
		t.Errorf("TotalUsers = %d, want 8", snaps[0].TotalUsers)
	}
}

func TestFeaturedProperties(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 10; i++ {
		mustCreate(t, store, activeProperty("owner-1", "Ottawa", float64(100000+i)))
	}
	draft := activeProperty("owner-1", "Ottawa", 1)
	draft.Status = models.PropertyStatusDraft
	mustCreate(t, store, draft)

	featured, err := store.FeaturedProperties(4)
	if err != nil {
		t.Fatalf("FeaturedProperties() error = %v", err)
	}
	if len(featured) != 4 {
		t.Errorf("len = %d, want 4", len(featured))
	}
	for _, p := range featured {
		if p.Status != models.PropertyStatusActive {
			t.Errorf("featured listing %s has status %s", p.ID, p.Status)
		}
	}
}
