package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/auth"
	"github.com/friends-cafe/cafe-api/checkout"
	"github.com/friends-cafe/cafe-api/menu"
	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	store  *storage.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "test-admin-key")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StorageRecord{}, &models.MenuCategory{}, &models.MenuItem{}))
	require.NoError(t, menu.Seed(db))

	store := storage.NewStore(db)
	authMgr := auth.NewManager(store, auth.SimulatedVerifier{})
	flow := checkout.NewFlow(store, checkout.SimulatedProcessor{})

	r := gin.New()
	SetupRoutes(r, db, store, authMgr, flow)
	return &testServer{router: r, db: db, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *testServer) signup(t *testing.T, username, phone string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth/signup", "", gin.H{
		"username": username,
		"phone":    phone,
		"otp":      auth.DemoOTP,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *testServer) menuItemID(t *testing.T, name string) uint {
	t.Helper()
	var item models.MenuItem
	require.NoError(t, s.db.First(&item, "name = ?", name).Error)
	return item.ID
}

func TestSignupAndLoginFlow(t *testing.T) {
	s := newTestServer(t)

	s.signup(t, "Ann", "9876543210")

	w := s.do(t, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"phone": "9876543210", "otp": auth.DemoOTP})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ann", user["username"])
	assert.Equal(t, "user_9876543210", user["id"])
}

func TestLoginBeforeSignup(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"phone": "9999999999", "otp": auth.DemoOTP})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWrongOTPRejected(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/auth/signup", "", gin.H{
		"username": "Ann", "phone": "9876543210", "otp": "0000",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []models.MenuCategory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.NotEmpty(t, categories)
	assert.Equal(t, "Breakfast", categories[0].Name)
	assert.NotEmpty(t, categories[0].Items)

	w = s.do(t, http.MethodGet, "/menu/Noodles", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/menu/Sushi", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/user/cart/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/user/cart/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "Ann", "9876543210")
	pizzaID := s.menuItemID(t, "Onion Pizza")

	w := s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": pizzaID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Same line again merges quantities.
	w = s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": pizzaID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["quantity"])

	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(207), totals["totalPrice"])
	assert.Equal(t, float64(30), totals["boxFees"])

	// Server-side pricing: unknown menu ids are rejected.
	w = s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": 99999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Cart line ids are menu item names, so they need escaping in the path.
	w = s.do(t, http.MethodPut, "/user/cart/"+url.PathEscape("Onion Pizza"), token, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/user/cart/"+url.PathEscape("No Such Item"), token, gin.H{"quantity": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting an absent line is still a success.
	w = s.do(t, http.MethodDelete, "/user/cart/"+url.PathEscape("No Such Item"), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/user/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Empty(t, body["items"])
}

func TestSizedPizzaCartLines(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "Ann", "9876543210")
	id := s.menuItemID(t, "Margherita Pizza")

	w := s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": id, "quantity": 1, "size": "small"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": id, "quantity": 1, "size": "large"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 2)

	// A sized pizza needs a valid size.
	w = s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": id, "quantity": 1, "size": "xl"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuestCartAndSignupMigration(t *testing.T) {
	s := newTestServer(t)
	pizzaID := s.menuItemID(t, "Onion Pizza")

	w := s.do(t, http.MethodPost, "/guest/cart/", "", gin.H{"item_id": pizzaID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := s.signup(t, "Ann", "9876543210")

	w = s.do(t, http.MethodGet, "/user/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])

	// The guest slot was consumed by the signup.
	w = s.do(t, http.MethodGet, "/guest/cart/", "", nil)
	body = decode(t, w)
	assert.Empty(t, body["items"])
}

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "Ann", "9876543210")
	pizzaID := s.menuItemID(t, "Onion Pizza")

	w := s.do(t, http.MethodPost, "/user/cart/", token, gin.H{"item_id": pizzaID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/user/addresses/", token, gin.H{
		"name": "Ann", "phone": "9876543210",
		"addressLine1": "12 MG Road", "city": "Jammu", "state": "J&K",
		"pincode": "180001", "type": "home",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	addr := decode(t, w)
	addressID := addr["id"].(string)
	assert.Equal(t, true, addr["isDefault"])

	w = s.do(t, http.MethodPut, "/user/checkout/step", token, gin.H{"step": "payment"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/user/checkout", token, gin.H{
		"address_id": addressID, "payment_method": "cod",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	order := body["order"].(map[string]any)
	assert.Contains(t, order["orderId"], "ORD")
	assert.Equal(t, float64(69+models.DeliveryFee+models.PizzaBoxFee), order["total"])

	// Cart is consumed, step reset, order visible in history and receipt.
	w = s.do(t, http.MethodGet, "/user/cart/", token, nil)
	body = decode(t, w)
	assert.Empty(t, body["items"])

	w = s.do(t, http.MethodGet, "/user/checkout/step", token, nil)
	body = decode(t, w)
	assert.Equal(t, "address", body["step"])

	w = s.do(t, http.MethodGet, "/user/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, order["orderId"], history[0].OrderID)

	w = s.do(t, http.MethodGet, "/orders/last", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var last models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &last))
	assert.Equal(t, order["orderId"], last.OrderID)
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "Ann", "9876543210")

	w := s.do(t, http.MethodPost, "/user/addresses/", token, gin.H{
		"name": "Ann", "phone": "9876543210",
		"addressLine1": "12 MG Road", "city": "Jammu", "state": "J&K",
		"pincode": "180001", "type": "home",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	addressID := decode(t, w)["id"].(string)

	w = s.do(t, http.MethodPost, "/user/checkout", token, gin.H{
		"address_id": addressID, "payment_method": "cod",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddressDefaultManagement(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "Ann", "9876543210")

	add := func(line1 string) string {
		w := s.do(t, http.MethodPost, "/user/addresses/", token, gin.H{
			"name": "Ann", "phone": "9876543210",
			"addressLine1": line1, "city": "Jammu", "state": "J&K",
			"pincode": "180001", "type": "work",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		return decode(t, w)["id"].(string)
	}

	first := add("12 MG Road")
	second := add("4 Industrial Estate")

	w := s.do(t, http.MethodPut, fmt.Sprintf("/user/addresses/%s/default", second), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/user/addresses/"+second, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/user/addresses/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var addrs []models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addrs))
	require.Len(t, addrs, 1)
	assert.Equal(t, first, addrs[0].ID)
	assert.True(t, addrs[0].IsDefault)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	s.signup(t, "Ann", "9876543210")

	w := s.do(t, http.MethodGet, "/admin/sessions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	req.Header.Set("X-API-KEY", "test-admin-key")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Phones []string `json:"phones"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Phones, "9876543210")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/sessions/9876543210", nil)
	req.Header.Set("X-API-KEY", "test-admin-key")
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
