// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/krigzlist/backend/config"
	"github.com/krigzlist/backend/internal/infra/dependency"
	"github.com/krigzlist/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	redis    *mock.Redis
	injector *dependency.Injector
	server   *httptest.Server

	response     *http.Response
	responseBody []byte

	// itemIDs maps item names added during the scenario to their ids.
	itemIDs map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			redis:   mock.NewRedis(),
			itemIDs: make(map[string]string),
		}
		tc.startServer()
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.server.Close()
			tc.redis.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the daily budget is ([0-9.]+)$`, theDailyBudgetIs)
	ctx.Step(`^the list contains items:$`, theListContainsItems)
	ctx.Step(`^I add an item named "([^"]*)" in category "([^"]*)" priced at ([0-9.]+)$`, iAddAPricedItem)
	ctx.Step(`^I confirm adding an item named "([^"]*)" in category "([^"]*)" priced at ([0-9.]+)$`, iConfirmAddingAPricedItem)
	ctx.Step(`^I select the item "([^"]*)"$`, iSelectTheItem)
	ctx.Step(`^I tap the item "([^"]*)"$`, iTapTheItem)
	ctx.Step(`^I delete the selected items$`, iDeleteTheSelectedItems)
	ctx.Step(`^I request the list$`, iRequestTheList)
	ctx.Step(`^I request ([a-z]+) spending trends$`, iRequestSpendingTrends)
	ctx.Step(`^I resolve the suggestion "([^"]*)"$`, iResolveTheSuggestion)
	ctx.Step(`^the server restarts$`, theServerRestarts)

	ctx.Step(`^the response status is (\d+)$`, theResponseStatusIs)
	ctx.Step(`^the response requires confirmation with a projected overage of "([^"]*)"$`, theResponseRequiresConfirmation)
	ctx.Step(`^the response reports (\d+) items? affected$`, theResponseReportsItemsAffected)
	ctx.Step(`^the tap was redirected to selection$`, theTapWasRedirectedToSelection)
	ctx.Step(`^the list has (\d+) items? in total$`, theListHasItemsInTotal)
	ctx.Step(`^the list has a "([^"]*)" section containing "([^"]*)"$`, theListHasASectionContaining)
	ctx.Step(`^the budget status shows "([^"]*)" spent and over budget$`, theBudgetStatusShowsOverBudget)
	ctx.Step(`^the trends chart has (\d+) buckets$`, theTrendsChartHasBuckets)
	ctx.Step(`^the resolved category is "([^"]*)"$`, theResolvedCategoryIs)
}

// startServer wires a fresh application over the scenario's Redis and
// exposes it through an httptest server.
func (tc *TestContext) startServer() {
	cfg := config.Load()
	cfg.Server.Environment = "test"

	tc.injector = dependency.NewInjector(cfg, tc.redis.Client)
	tc.injector.Store.Hydrate(context.Background())
	tc.server = httptest.NewServer(tc.injector.Router.Setup(cfg.Server.Environment))
}

func (tc *TestContext) do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (tc *TestContext) jsonBody() (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.responseBody)
	}
	return parsed, nil
}

func (tc *TestContext) addItem(name, category string, price float64, confirmed bool) error {
	path := "/api/v1/items"
	if confirmed {
		path += "?confirm=true"
	}
	body := map[string]any{"name": name}
	if category != "" {
		body["category"] = category
	}
	if price > 0 {
		body["price"] = price
	}
	if err := tc.do(http.MethodPost, path, body); err != nil {
		return err
	}

	// Remember the id so later steps can address the item by name.
	if tc.response.StatusCode == http.StatusCreated {
		parsed, err := tc.jsonBody()
		if err != nil {
			return err
		}
		if item, ok := parsed["item"].(map[string]any); ok {
			if id, ok := item["id"].(string); ok {
				tc.itemIDs[name] = id
			}
		}
	}
	return nil
}

func theDailyBudgetIs(ctx context.Context, amount float64) error {
	tc := GetTestContext(ctx)
	if err := tc.do(http.MethodPut, "/api/v1/budget", map[string]any{"amount": amount}); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func theListContainsItems(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	for _, row := range table.Rows {
		name := row.Cells[0].Value
		if err := tc.addItem(name, "", 0, false); err != nil {
			return err
		}
		if err := expectStatus(tc, http.StatusCreated); err != nil {
			return err
		}
	}
	return nil
}

func iAddAPricedItem(ctx context.Context, name, category string, price float64) error {
	return GetTestContext(ctx).addItem(name, category, price, false)
}

func iConfirmAddingAPricedItem(ctx context.Context, name, category string, price float64) error {
	return GetTestContext(ctx).addItem(name, category, price, true)
}

func iSelectTheItem(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	id, ok := tc.itemIDs[name]
	if !ok {
		return fmt.Errorf("no item named %q was added in this scenario", name)
	}
	if err := tc.do(http.MethodPost, "/api/v1/items/"+id+"/select", nil); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func iTapTheItem(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	id, ok := tc.itemIDs[name]
	if !ok {
		return fmt.Errorf("no item named %q was added in this scenario", name)
	}
	return tc.do(http.MethodPost, "/api/v1/items/"+id+"/toggle", nil)
}

func iDeleteTheSelectedItems(ctx context.Context) error {
	return GetTestContext(ctx).do(http.MethodDelete, "/api/v1/items/selection", nil)
}

func iRequestTheList(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.do(http.MethodGet, "/api/v1/items", nil); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func iRequestSpendingTrends(ctx context.Context, timeframe string) error {
	tc := GetTestContext(ctx)
	if err := tc.do(http.MethodGet, "/api/v1/reports/trends?timeframe="+timeframe, nil); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

func iResolveTheSuggestion(ctx context.Context, text string) error {
	tc := GetTestContext(ctx)
	if err := tc.do(http.MethodPost, "/api/v1/suggestions/resolve", map[string]any{"text": text}); err != nil {
		return err
	}
	return expectStatus(tc, http.StatusOK)
}

// theServerRestarts rebuilds the whole application over the same Redis,
// so the next steps observe only what was persisted.
func theServerRestarts(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.waitForSnapshot(); err != nil {
		return err
	}
	tc.server.Close()
	tc.startServer()
	return nil
}

// waitForSnapshot blocks until the persisted snapshot matches the store's
// current item count. Saves run in background goroutines, so a restart right
// after a mutation would otherwise race the persistence write; earlier
// mutations (e.g. setting the budget) also write the items key, so the key
// existing is not enough to know the latest save has landed.
func (tc *TestContext) waitForSnapshot() error {
	itemsKey := tc.injector.Config.Storage.ItemsKey
	want := len(tc.injector.Store.Items())
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		raw, err := tc.redis.Client.Get(context.Background(), itemsKey).Result()
		if err == nil {
			var stored []json.RawMessage
			if json.Unmarshal([]byte(raw), &stored) == nil && len(stored) == want {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("snapshot in %q did not reach %d items within deadline", itemsKey, want)
}

func theResponseStatusIs(ctx context.Context, status int) error {
	return expectStatus(GetTestContext(ctx), status)
}

func theResponseRequiresConfirmation(ctx context.Context, overage string) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	if required, _ := parsed["requires_confirmation"].(bool); !required {
		return fmt.Errorf("expected requires_confirmation=true, body: %s", tc.responseBody)
	}
	if got, _ := parsed["projected_overage"].(string); got != overage {
		return fmt.Errorf("expected projected overage %q, got %q", overage, got)
	}
	return nil
}

func theResponseReportsItemsAffected(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	if got, _ := parsed["count"].(float64); int(got) != count {
		return fmt.Errorf("expected count %d, got %v", count, parsed["count"])
	}
	return nil
}

func theTapWasRedirectedToSelection(ctx context.Context) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	if redirected, _ := parsed["redirected"].(bool); !redirected {
		return fmt.Errorf("expected redirected=true, body: %s", tc.responseBody)
	}
	return nil
}

func theListHasItemsInTotal(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	if got, _ := parsed["total_count"].(float64); int(got) != count {
		return fmt.Errorf("expected total_count %d, got %v", count, parsed["total_count"])
	}
	return nil
}

func theListHasASectionContaining(ctx context.Context, categoryName, itemName string) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	groups, _ := parsed["groups"].([]any)
	for _, rawGroup := range groups {
		group, _ := rawGroup.(map[string]any)
		if group["category_name"] != categoryName {
			continue
		}
		items, _ := group["items"].([]any)
		for _, rawItem := range items {
			item, _ := rawItem.(map[string]any)
			if item["name"] == itemName {
				return nil
			}
		}
		return fmt.Errorf("section %q exists but does not contain %q", categoryName, itemName)
	}
	return fmt.Errorf("no section named %q in response: %s", categoryName, tc.responseBody)
}

func theBudgetStatusShowsOverBudget(ctx context.Context, spent string) error {
	tc := GetTestContext(ctx)
	if err := tc.do(http.MethodGet, "/api/v1/budget", nil); err != nil {
		return err
	}
	if err := expectStatus(tc, http.StatusOK); err != nil {
		return err
	}
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	if got, _ := parsed["total_spent"].(string); got != spent {
		return fmt.Errorf("expected total_spent %q, got %q", spent, got)
	}
	if over, _ := parsed["over_budget"].(bool); !over {
		return fmt.Errorf("expected over_budget=true, body: %s", tc.responseBody)
	}
	return nil
}

func theTrendsChartHasBuckets(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	buckets, _ := parsed["buckets"].([]any)
	if len(buckets) != count {
		return fmt.Errorf("expected %d buckets, got %d", count, len(buckets))
	}
	return nil
}

func theResolvedCategoryIs(ctx context.Context, categoryName string) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.jsonBody()
	if err != nil {
		return err
	}
	category, _ := parsed["category"].(map[string]any)
	if category["name"] != categoryName {
		return fmt.Errorf("expected resolved category %q, got %v", categoryName, category["name"])
	}
	return nil
}

func expectStatus(tc *TestContext, status int) error {
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			status, tc.response.StatusCode, strings.TrimSpace(string(tc.responseBody)))
	}
	return nil
}
