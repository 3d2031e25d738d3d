package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"tbs/src/cart"
	"tbs/src/db"
	"tbs/src/models"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB    *gorm.DB
	Carts *cart.Manager

	event models.Event
	cat1  models.TicketCategory
	cat2  models.TicketCategory
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerValidators()

	gdb, err := gorm.Open(sqlite.Open("file:mainsuite?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening test database: %s", err.Error())
	}
	if err := gdb.AutoMigrate(
		&models.Event{},
		&models.TicketCategory{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryAdjustment{},
	); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	db.NewDB(gdb)
	s.DB = gdb
	s.Carts = cart.NewManager()

	s.event = models.Event{
		City:  "Paris",
		Venue: "Accor Arena",
		Date:  time.Date(2026, 11, 21, 20, 0, 0, 0, time.UTC),
	}
	if err := gdb.Create(&s.event).Error; err != nil {
		log.Fatalf("error seeding event: %s", err.Error())
	}
	s.cat1 = models.TicketCategory{EventID: s.event.ID, CategoryName: "Catégorie 1", Price: 45.00, AvailableQuantity: 5}
	s.cat2 = models.TicketCategory{EventID: s.event.ID, CategoryName: "Fosse", Price: 60.00, AvailableQuantity: 8}
	if err := gdb.Create(&s.cat1).Error; err != nil {
		log.Fatalf("error seeding ticket category: %s", err.Error())
	}
	if err := gdb.Create(&s.cat2).Error; err != nil {
		log.Fatalf("error seeding ticket category: %s", err.Error())
	}
}

func (s *TestSuite) newRouter() *gin.Engine {
	router := setupRouter()
	storefrontRoutes(router, s.Carts)
	return router
}

func (s *TestSuite) ordersCount() int64 {
	var count int64
	s.DB.Model(&models.Order{}).Count(&count)
	return count
}

func jsonRequest(method, target string, body map[string]any, cookies ...*http.Cookie) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(&body)
		reader = strings.NewReader(string(b))
	}
	req, _ := http.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "cart_session" {
			return cookie
		}
	}
	return nil
}

func (s *TestSuite) TestPingRoute() {
	router := s.newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	storefrontRoutes(router, s.Carts)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestCatalog() {
	router := s.newRouter()

	s.Run("Should return events with nested ticket categories", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/events", nil))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(1), gjson.Get(sjson, "count").Int())
		assert.Equal(s.T(), "Paris", gjson.Get(sjson, "data.0.city").String())
		assert.Equal(s.T(), int64(2), gjson.Get(sjson, "data.0.ticket_categories.#").Int())
	})

	s.Run("Should return a single event", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", fmt.Sprintf("/api/v1/events/%s", s.event.ID), nil))

		assert.Equal(s.T(), 200, w.Code)
	})

	s.Run("Should return 404 for an unknown event", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/events/00000000-0000-0000-0000-0000000000aa", nil))

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should reject a malformed event id", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/events/not-a-uuid", nil))

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestCartFlow() {
	router := s.newRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/v1/cart/items", map[string]any{
		"ticket_id": s.cat1.ID.String(),
		"quantity":  2,
	}))
	assert.Equal(s.T(), 201, w.Code)
	cookie := sessionCookie(w)
	if !assert.NotNil(s.T(), cookie) {
		return
	}

	s.Run("Should report totals for the session cart", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/cart", nil, cookie))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(2), gjson.Get(sjson, "total_items").Int())
		assert.Equal(s.T(), 90.00, gjson.Get(sjson, "total_price").Float())
	})

	s.Run("Should clamp quantity updates to availability", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("PUT", fmt.Sprintf("/api/v1/cart/items/%s", s.cat1.ID), map[string]any{
			"quantity": 100,
		}, cookie))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), int64(5), gjson.Get(string(rbytes), "total_items").Int())
	})

	s.Run("Should clamp a zero quantity to one", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("PUT", fmt.Sprintf("/api/v1/cart/items/%s", s.cat1.ID), map[string]any{
			"quantity": 0,
		}, cookie))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), int64(1), gjson.Get(string(rbytes), "total_items").Int())
	})

	s.Run("Should reject a malformed ticket id", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("PUT", "/api/v1/cart/items/not-a-uuid", map[string]any{
			"quantity": 2,
		}, cookie))

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should remove the line item", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("DELETE", fmt.Sprintf("/api/v1/cart/items/%s", s.cat1.ID), nil, cookie))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), int64(0), gjson.Get(string(rbytes), "count").Int())
	})

	s.Run("Should return 404 for an unknown ticket category", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/api/v1/cart/items", map[string]any{
			"ticket_id": "00000000-0000-0000-0000-0000000000bb",
			"quantity":  1,
		}, cookie))

		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestCheckoutValidation() {
	router := s.newRouter()
	before := s.ordersCount()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/v1/checkout", map[string]any{
		"name":  "   ",
		"email": "not-an-email",
	}))

	assert.Equal(s.T(), 400, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), "name is required", gjson.Get(sjson, "errors.name").String())
	assert.Equal(s.T(), "invalid email", gjson.Get(sjson, "errors.email").String())
	assert.Equal(s.T(), before, s.ordersCount())
}

func (s *TestSuite) TestCheckoutEmptyCartRedirects() {
	router := s.newRouter()
	before := s.ordersCount()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/v1/checkout", map[string]any{
		"name":  "Jean Dupont",
		"email": "jean.dupont@example.com",
	}))

	assert.Equal(s.T(), 303, w.Code)
	assert.Equal(s.T(), "/api/v1/cart", w.Header().Get("Location"))
	assert.Equal(s.T(), before, s.ordersCount())
}

func (s *TestSuite) TestCheckoutAndConfirmation() {
	router := s.newRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/v1/cart/items", map[string]any{
		"ticket_id": s.cat2.ID.String(),
		"quantity":  2,
	}))
	assert.Equal(s.T(), 201, w.Code)
	cookie := sessionCookie(w)
	if !assert.NotNil(s.T(), cookie) {
		return
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/v1/checkout", map[string]any{
		"name":  "Jean Dupont",
		"email": "jean.dupont@example.com",
		"phone": "06 12 34 56 78",
	}, cookie))

	assert.Equal(s.T(), 201, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	orderNumber := gjson.Get(string(rbytes), "order_number").String()
	assert.NotEmpty(s.T(), orderNumber)

	s.Run("Should clear the cart after checkout", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/cart", nil, cookie))

		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), int64(0), gjson.Get(string(rbytes), "count").Int())
	})

	s.Run("Should serve the confirmation view", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", fmt.Sprintf("/api/v1/orders/%s", orderNumber), nil))

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.Equal(s.T(), 120.00, gjson.Get(sjson, "data.total_amount").Float())
		assert.Equal(s.T(), "pending", gjson.Get(sjson, "data.status").String())
		assert.Equal(s.T(), "Fosse", gjson.Get(sjson, "data.items.0.ticket_category.category_name").String())
	})

	s.Run("Should return 404 for an unknown order number", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("GET", "/api/v1/orders/BE-unknown-ZZZZZZ", nil))

		assert.Equal(s.T(), 404, w.Code)
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
