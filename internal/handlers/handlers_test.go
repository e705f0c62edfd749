package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"homefinder/internal/cleanup"
	"homefinder/internal/database"
	"homefinder/internal/middleware"
	"homefinder/internal/models"
	"homefinder/internal/notify"
	"homefinder/internal/seed"
	"homefinder/internal/snapshot"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, database.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store := database.NewGormStoreFromDB(db)
	if err := store.InitSchema(); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notify.New("", "", "", log)

	properties := NewPropertyHandler(store, nil, log)
	enquiries := NewEnquiryHandler(store, notifier, log)
	saved := NewSavedHandler(store)
	users := NewUserHandler(store)
	seeds := NewSeedHandler(store, log)
	admin := NewAdminHandler(store, snapshot.NewService(store, log), cleanup.NewService(store, log), 90)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/properties", properties.Search)
	api.GET("/properties/map", properties.MapSearch)
	api.GET("/properties/:id", middleware.OptionalAuth(testSecret), properties.Get)

	authed := api.Group("", middleware.RequireAuth(testSecret))
	authed.POST("/properties", properties.Create)
	authed.PATCH("/properties/:id", properties.Update)
	authed.DELETE("/properties/:id", properties.Delete)
	authed.GET("/my/properties", properties.MyProperties)
	authed.POST("/enquiries", enquiries.Create)
	authed.GET("/enquiries", enquiries.List)
	authed.PATCH("/enquiries/:id", enquiries.UpdateStatus)
	authed.GET("/saved", saved.List)
	authed.POST("/saved/:propertyId", saved.Save)
	authed.DELETE("/saved/:propertyId", saved.Unsave)
	authed.GET("/me", users.Me)
	authed.POST("/me", users.Register)
	authed.PATCH("/me", users.UpdateMe)
	authed.POST("/seed", seeds.SeedCurated)
	authed.POST("/seed/generated", seeds.SeedGenerated)
	authed.GET("/admin/stats", admin.GetStats)
	authed.GET("/admin/listings", admin.GetListings)
	authed.GET("/admin/stats/history", admin.GetStatsHistory)
	authed.POST("/admin/stats/snapshot", admin.CaptureSnapshot)
	authed.POST("/admin/cleanup", admin.RunCleanup)
	authed.PATCH("/admin/users/:id/role", admin.SetRole)

	return r, store
}

func token(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.test",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, userID))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// becomeOwner registers a user with the owner role so they can create
// listings.
func becomeOwner(t *testing.T, r *gin.Engine, userID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/me", userID, gin.H{"role": "owner"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s as owner: status %d: %s", userID, w.Code, w.Body.String())
	}
}

func createListing(t *testing.T, r *gin.Engine, userID string, overrides gin.H) string {
	t.Helper()
	body := gin.H{
		"title":         "Bright family home",
		"property_type": "house",
		"listing_type":  "sale",
		"status":        "active",
		"price":         500000,
		"address":       "1 Main Street",
		"city":          "Ottawa",
		"state":         "Ontario",
		"bedrooms":      3,
		"amenities":     []string{"Garage"},
	}
	for k, v := range overrides {
		body[k] = v
	}
	w := doJSON(t, r, http.MethodPost, "/api/properties", userID, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create listing: status %d: %s", w.Code, w.Body.String())
	}
	var created models.Property
	decode(t, w, &created)
	return created.ID
}

func TestSearchEndpointPagination(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")

	for i := 0; i < 15; i++ {
		createListing(t, r, "owner-1", gin.H{"price": 100000 + i*1000})
	}

	w := doJSON(t, r, http.MethodGet, "/api/properties?limit=12", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var page struct {
		Data       []models.Property `json:"data"`
		Total      int64             `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
	}
	decode(t, w, &page)
	if page.Total != 15 || len(page.Data) != 12 || page.TotalPages != 2 {
		t.Errorf("page 1: total=%d len=%d totalPages=%d", page.Total, len(page.Data), page.TotalPages)
	}

	w = doJSON(t, r, http.MethodGet, "/api/properties?limit=12&page=2", "", nil)
	decode(t, w, &page)
	if len(page.Data) != 3 {
		t.Errorf("page 2 returned %d rows, want 3", len(page.Data))
	}

	// Past the last page: empty data, metadata intact.
	w = doJSON(t, r, http.MethodGet, "/api/properties?limit=12&page=9", "", nil)
	decode(t, w, &page)
	if len(page.Data) != 0 || page.Total != 15 {
		t.Errorf("page 9: len=%d total=%d", len(page.Data), page.Total)
	}
}

func TestSearchEndpointRejectsMalformedFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, query := range []string{
		"min_price=cheap",
		"bedrooms=-1",
		"listing_type=lease",
		"north=45", // partial bounds
		"featured=0",
	} {
		w := doJSON(t, r, http.MethodGet, "/api/properties?"+query, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, w.Code)
		}
	}
}

func TestFeaturedShortCircuitsFilters(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	for i := 0; i < 6; i++ {
		createListing(t, r, "owner-1", gin.H{"city": "Toronto"})
	}

	// The city filter would exclude everything; featured ignores it.
	w := doJSON(t, r, http.MethodGet, "/api/properties?featured=4&city=Ottawa", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var result struct {
		Data  []models.Property `json:"data"`
		Total int64             `json:"total"`
	}
	decode(t, w, &result)
	if len(result.Data) != 4 {
		t.Errorf("featured returned %d rows, want 4", len(result.Data))
	}
}

func TestMapEndpointRequiresBounds(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	createListing(t, r, "owner-1", gin.H{"latitude": 45.42, "longitude": -75.69})
	createListing(t, r, "owner-1", gin.H{"latitude": 51.05, "longitude": -114.07})

	w := doJSON(t, r, http.MethodGet, "/api/properties/map", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing bounds: status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/properties/map?north=46&south=45&east=-75&west=-76", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var result struct {
		Data  []models.Property `json:"data"`
		Total int64             `json:"total"`
	}
	decode(t, w, &result)
	if result.Total != 1 {
		t.Errorf("total = %d, want only the Ottawa pin", result.Total)
	}
}

func TestDraftVisibility(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	id := createListing(t, r, "owner-1", gin.H{"status": "draft"})

	// Anonymous and other users see a 404.
	if w := doJSON(t, r, http.MethodGet, "/api/properties/"+id, "", nil); w.Code != http.StatusNotFound {
		t.Errorf("anonymous: status = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/properties/"+id, "buyer-1", nil); w.Code != http.StatusNotFound {
		t.Errorf("other user: status = %d, want 404", w.Code)
	}
	// The owner sees the draft.
	if w := doJSON(t, r, http.MethodGet, "/api/properties/"+id, "owner-1", nil); w.Code != http.StatusOK {
		t.Errorf("owner: status = %d, want 200", w.Code)
	}
}

func TestCreateRequiresListingRole(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/properties", "buyer-1", gin.H{
		"title": "x", "property_type": "house", "listing_type": "sale", "price": 1,
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("buyer create: status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/properties", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create: status = %d, want 401", w.Code)
	}
}

func TestCreateRequiresLocation(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")

	for _, missing := range []string{"address", "city", "state"} {
		body := gin.H{
			"title": "No location", "property_type": "house", "listing_type": "sale", "price": 1,
			"address": "1 Main Street", "city": "Ottawa", "state": "Ontario",
		}
		delete(body, missing)
		w := doJSON(t, r, http.MethodPost, "/api/properties", "owner-1", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("create without %s: status = %d, want 400", missing, w.Code)
		}

		body[missing] = "   "
		w = doJSON(t, r, http.MethodPost, "/api/properties", "owner-1", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("create with blank %s: status = %d, want 400", missing, w.Code)
		}
	}
}

func TestUpdateOwnershipGate(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	becomeOwner(t, r, "owner-2")
	id := createListing(t, r, "owner-1", nil)

	w := doJSON(t, r, http.MethodPatch, "/api/properties/"+id, "owner-2", gin.H{"price": 1})
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign update: status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+id, "owner-1", gin.H{"price": 650000, "status": "under_contract"})
	if w.Code != http.StatusOK {
		t.Fatalf("owner update: status = %d: %s", w.Code, w.Body.String())
	}
	var updated models.Property
	decode(t, w, &updated)
	if updated.Price != 650000 || updated.Status != models.PropertyStatusUnderContract {
		t.Errorf("updated = price %f status %s", updated.Price, updated.Status)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+id, "owner-1", gin.H{"status": "bogus"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: status = %d, want 400", w.Code)
	}
}

func TestEnquiryFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	id := createListing(t, r, "owner-1", nil)

	// Owners cannot enquire about their own listing.
	w := doJSON(t, r, http.MethodPost, "/api/enquiries", "owner-1", gin.H{"property_id": id, "message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("self-enquiry: status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/enquiries", "buyer-1", gin.H{"property_id": id, "message": "Is it available?"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create enquiry: status = %d: %s", w.Code, w.Body.String())
	}
	var enquiry models.Enquiry
	decode(t, w, &enquiry)
	if enquiry.Status != models.EnquiryStatusUnread || enquiry.OwnerID != "owner-1" {
		t.Errorf("enquiry = %+v", enquiry)
	}

	// Sender and owner both see it; an unrelated buyer does not.
	for user, want := range map[string]int{"buyer-1": 1, "owner-1": 1, "buyer-2": 0} {
		w := doJSON(t, r, http.MethodGet, "/api/enquiries", user, nil)
		var list struct {
			Total int `json:"total"`
		}
		decode(t, w, &list)
		if list.Total != want {
			t.Errorf("%s sees %d enquiries, want %d", user, list.Total, want)
		}
	}

	// Only the owner may update status.
	w = doJSON(t, r, http.MethodPatch, "/api/enquiries/"+enquiry.ID, "buyer-1", gin.H{"status": "read"})
	if w.Code != http.StatusForbidden {
		t.Errorf("sender status change: status = %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodPatch, "/api/enquiries/"+enquiry.ID, "owner-1", gin.H{"status": "read"})
	if w.Code != http.StatusOK {
		t.Errorf("owner status change: status = %d: %s", w.Code, w.Body.String())
	}
}

func TestSavedListingFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	id := createListing(t, r, "owner-1", nil)

	w := doJSON(t, r, http.MethodPost, "/api/saved/"+id, "buyer-1", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("save: status = %d: %s", w.Code, w.Body.String())
	}
	// A second save conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/saved/"+id, "buyer-1", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("double save: status = %d, want 409", w.Code)
	}
	// Saving a missing listing is a 404.
	w = doJSON(t, r, http.MethodPost, "/api/saved/missing", "buyer-1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("save missing: status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/saved", "buyer-1", nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	if list.Total != 1 {
		t.Errorf("saved total = %d, want 1", list.Total)
	}

	// Unsave is idempotent.
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodDelete, "/api/saved/"+id, "buyer-1", nil)
		if w.Code != http.StatusOK {
			t.Errorf("unsave attempt %d: status = %d", i+1, w.Code)
		}
	}
}

func TestProfileLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	// First authenticated contact provisions a buyer profile.
	w := doJSON(t, r, http.MethodGet, "/api/me", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status = %d: %s", w.Code, w.Body.String())
	}
	var profile models.Profile
	decode(t, w, &profile)
	if profile.Role != models.RoleBuyer || profile.Email != "user-1@example.test" {
		t.Errorf("provisioned profile = %+v", profile)
	}

	// Role is fixed after signup: re-registering conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/me", "user-1", gin.H{"role": "owner"})
	if w.Code != http.StatusConflict {
		t.Errorf("re-register: status = %d, want 409", w.Code)
	}

	// Admin cannot be chosen at signup.
	w = doJSON(t, r, http.MethodPost, "/api/me", "user-2", gin.H{"role": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("admin signup: status = %d, want 400", w.Code)
	}

	// PATCH updates contact fields but never the role.
	w = doJSON(t, r, http.MethodPatch, "/api/me", "user-1", gin.H{"full_name": "Dana Smith", "role": "owner"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &profile)
	if profile.FullName != "Dana Smith" || profile.Role != models.RoleBuyer {
		t.Errorf("after update: %+v", profile)
	}
}

func TestAdminEndpoints(t *testing.T) {
	r, store := newTestRouter(t)
	becomeOwner(t, r, "owner-1")
	createListing(t, r, "owner-1", nil)
	createListing(t, r, "owner-1", gin.H{"status": "draft"})

	// Non-admins are rejected.
	if w := doJSON(t, r, http.MethodGet, "/api/admin/stats", "owner-1", nil); w.Code != http.StatusForbidden {
		t.Errorf("owner stats: status = %d, want 403", w.Code)
	}

	// Provision the admin profile, then promote it directly.
	doJSON(t, r, http.MethodGet, "/api/me", "admin-1", nil)
	if err := store.SetRole("admin-1", models.RoleAdmin); err != nil {
		t.Fatalf("SetRole() error = %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", "admin-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin stats: status = %d: %s", w.Code, w.Body.String())
	}
	var stats models.PlatformStats
	decode(t, w, &stats)
	if stats.TotalListings != 2 || stats.ActiveListings != 1 {
		t.Errorf("stats = %+v", stats)
	}

	// Admin listings include drafts and carry owner info.
	w = doJSON(t, r, http.MethodGet, "/api/admin/listings", "admin-1", nil)
	var listings struct {
		Data  []models.Property `json:"data"`
		Total int64             `json:"total"`
	}
	decode(t, w, &listings)
	if listings.Total != 2 {
		t.Errorf("admin listings total = %d, want 2", listings.Total)
	}
	for _, p := range listings.Data {
		if p.Owner == nil {
			t.Errorf("listing %s missing owner profile", p.ID)
		}
	}

	// Snapshot capture and history round trip.
	if w := doJSON(t, r, http.MethodPost, "/api/admin/stats/snapshot", "admin-1", nil); w.Code != http.StatusOK {
		t.Fatalf("capture snapshot: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/admin/stats/history", "admin-1", nil)
	var history struct {
		Total int `json:"total"`
	}
	decode(t, w, &history)
	if history.Total != 1 {
		t.Errorf("history total = %d, want 1", history.Total)
	}

	// Role management.
	w = doJSON(t, r, http.MethodPatch, "/api/admin/users/owner-1/role", "admin-1", gin.H{"role": "buyer"})
	if w.Code != http.StatusOK {
		t.Errorf("set role: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPatch, "/api/admin/users/owner-1/role", "admin-1", gin.H{"role": "landlord"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad role: status = %d, want 400", w.Code)
	}
}

func TestSeedEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")

	w := doJSON(t, r, http.MethodPost, "/api/seed", "owner-1", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed: status = %d: %s", w.Code, w.Body.String())
	}
	var result struct {
		Count int `json:"count"`
	}
	decode(t, w, &result)
	if result.Count != 40 {
		t.Errorf("curated count = %d, want 40", result.Count)
	}

	// Buyers cannot seed.
	w = doJSON(t, r, http.MethodPost, "/api/seed", "buyer-1", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("buyer seed: status = %d, want 403", w.Code)
	}

	// All seeded listings are active, searchable and owned by the seeder.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/properties?city=%s&limit=100", "Ottawa"), "", nil)
	var page struct {
		Total int64 `json:"total"`
	}
	decode(t, w, &page)
	if page.Total != 40 {
		t.Errorf("searchable Ottawa listings = %d, want 40", page.Total)
	}
}

func TestSeedGeneratedCitiesParam(t *testing.T) {
	r, _ := newTestRouter(t)
	becomeOwner(t, r, "owner-1")

	w := doJSON(t, r, http.MethodPost, "/api/seed/generated?cities=2", "owner-1", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed generated: status = %d: %s", w.Code, w.Body.String())
	}
	var result struct {
		Count int `json:"count"`
	}
	decode(t, w, &result)
	if result.Count != 2*seed.SlotsPerCity {
		t.Errorf("count = %d, want %d", result.Count, 2*seed.SlotsPerCity)
	}

	for _, bad := range []string{"0", "-3", "9000", "many"} {
		w = doJSON(t, r, http.MethodPost, "/api/seed/generated?cities="+bad, "owner-1", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("cities=%s: status = %d, want 400", bad, w.Code)
		}
	}
}
