package client_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nexora-backend/client"
	"nexora-backend/models"
	"nexora-backend/routes"
)

func newTestServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Service{}, &models.Order{}))

	// A single connection serializes SQLite writes under concurrent requests.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	srv := httptest.NewServer(routes.SetupRouter(db))
	t.Cleanup(srv.Close)

	return client.New(srv.URL)
}

func TestHealthRoundTrip(t *testing.T) {
	c := newTestServer(t)
	require.NoError(t, c.Health())
}

func TestServiceRoundTrip(t *testing.T) {
	c := newTestServer(t)

	created, err := c.CreateService("Logo design", "A custom logo", 49.99)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	services, err := c.ListServices()
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, 49.99, services[0].Price)
}

func TestCreateServiceValidationError(t *testing.T) {
	c := newTestServer(t)

	_, err := c.CreateService("Bad", "Negative price", -1)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "price must be a non-negative number.", apiErr.Message)
}

// A cart is submitted as independent concurrent order requests; when one
// item's service disappeared between cart assembly and submission, the
// caller sees exactly which items succeeded and which failed.
func TestSubmitCartPartialSuccess(t *testing.T) {
	c := newTestServer(t)

	logo, err := c.CreateService("Logo design", "A custom logo", 120)
	require.NoError(t, err)
	seo, err := c.CreateService("SEO audit", "Full site audit", 300)
	require.NoError(t, err)
	doomed, err := c.CreateService("Landing page", "One pager", 250)
	require.NoError(t, err)

	// The third service vanishes before checkout.
	require.NoError(t, c.DeleteService(doomed.ID))

	results := c.SubmitCart("Ada Lovelace", "ada@example.com",
		[]uint{logo.ID, seo.ID, doomed.ID})
	require.Len(t, results, 3)

	var succeeded, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			require.Equal(t, doomed.ID, res.ServiceID)
			var apiErr *client.APIError
			require.ErrorAs(t, res.Err, &apiErr)
			require.Equal(t, 400, apiErr.StatusCode)
			require.Equal(t, "serviceId does not exist.", apiErr.Message)
			continue
		}
		succeeded++
		require.NotNil(t, res.Order)
		require.Equal(t, res.ServiceID, res.Order.ServiceID)
	}
	require.Equal(t, 2, succeeded)
	require.Equal(t, 1, failed)

	orders, err := c.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestSubmitCartAllFail(t *testing.T) {
	c := newTestServer(t)

	results := c.SubmitCart("Ada", "ada@example.com", []uint{999991, 999992})
	require.Len(t, results, 2)
	for _, res := range results {
		var apiErr *client.APIError
		require.ErrorAs(t, res.Err, &apiErr)
		require.Equal(t, 400, apiErr.StatusCode)
	}

	orders, err := c.ListOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
}
