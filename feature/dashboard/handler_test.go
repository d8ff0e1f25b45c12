package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"metabuild-hub/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(stub *stubReconciler) *fiber.App {
	app := fiber.New()
	f := NewFeature(stub, nil)
	_ = f.Load(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandleItems(t *testing.T) {
	stub := &stubReconciler{result: reconcile.Result{
		Items: []reconcile.DisplayItem{{
			ID:           "tok1",
			Title:        "Expo A",
			Description:  "General",
			ImageURL:     "/assets/images/business-model-1.png",
			Organizer:    "Organizador desconocido",
			CollectionID: "a-cai",
			Sector:       "General",
			SubSector:    "N/A",
		}},
		Failures: []reconcile.Failure{{CollectionKey: "b-cai", Reason: "stopped"}},
	}}

	status, body := get(t, setupApp(stub), "/dashboard/user-1/items")

	assert.Equal(t, fiber.StatusOK, status)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "tok1", item["id"])
	assert.Equal(t, "Expo A", item["title"])
	assert.Equal(t, "a-cai", item["collection_id"])
	assert.Equal(t, "N/A", item["sub_sector"])

	failures := body["failures"].([]any)
	require.Len(t, failures, 1)
	assert.Equal(t, "b-cai", failures[0].(map[string]any)["collection_key"])
	assert.NotContains(t, body, "error")
}

func TestHandleItems_InitialFetchFailed(t *testing.T) {
	stub := &stubReconciler{result: reconcile.Result{
		Items:    []reconcile.DisplayItem{},
		Failures: []reconcile.Failure{},
		Err:      errors.New("failed to load user collections: caller is not authenticated"),
	}}

	status, body := get(t, setupApp(stub), "/dashboard/user-1/items")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["items"])
	assert.Contains(t, body["error"], "not authenticated")
}

func TestFeature(t *testing.T) {
	f := NewFeature(&stubReconciler{}, nil)
	assert.Equal(t, "dashboard", f.Name())
	assert.True(t, f.IsEnabled())
	assert.False(t, NewFeature(nil, nil).IsEnabled())
}
