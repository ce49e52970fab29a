// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"

	"github.com/krigzlist/backend/config"
	"github.com/krigzlist/backend/internal/application/adapter"
	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/application/usecase/budget"
	"github.com/krigzlist/backend/internal/application/usecase/item"
	"github.com/krigzlist/backend/internal/application/usecase/report"
	"github.com/krigzlist/backend/internal/application/usecase/suggestion"
	"github.com/krigzlist/backend/internal/infra/db"
	"github.com/krigzlist/backend/internal/infra/server/router"
	"github.com/krigzlist/backend/internal/integration/adapters"
	"github.com/krigzlist/backend/internal/integration/email"
	"github.com/krigzlist/backend/internal/integration/entrypoint/controller"
	"github.com/krigzlist/backend/internal/integration/persistence"
)

// Injector holds the wired application graph.
type Injector struct {
	Config *config.Config
	Store  *store.ListStore
	Router *router.Router
}

// NewInjector wires repositories, use cases and controllers around the
// given Redis client.
func NewInjector(cfg *config.Config, redisClient *redis.Client) *Injector {
	// Persistence
	snapshots := persistence.NewRedisSnapshotRepository(
		redisClient, cfg.Storage.ItemsKey, cfg.Storage.BudgetKey)
	listStore := store.NewListStore(snapshots)

	// Optional budget overrun alerting
	var notifier *budget.Alerter
	if cfg.Email.ResendAPIKey != "" && cfg.Email.AlertEmail != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		notifier = budget.NewAlerter(sender, cfg.Email.AlertEmail)
	}

	// Optional AI category suggester
	var suggester adapter.CategorySuggester
	if cfg.AI.APIKey != "" {
		suggester = adapters.NewGeminiSuggester(cfg.AI.APIKey, cfg.AI.Model)
	}

	// Item use cases
	listItemsUseCase := item.NewListItemsUseCase(listStore)
	addItemUseCase := item.NewAddItemUseCase(listStore, notifierOrNil(notifier))
	editItemUseCase := item.NewEditItemUseCase(listStore, notifierOrNil(notifier))
	toggleItemUseCase := item.NewToggleItemUseCase(listStore)
	toggleSelectionUseCase := item.NewToggleSelectionUseCase(listStore)
	clearSelectionUseCase := item.NewClearSelectionUseCase(listStore)
	deleteItemUseCase := item.NewDeleteItemUseCase(listStore)
	deleteSelectedUseCase := item.NewDeleteSelectedUseCase(listStore)
	clearAllUseCase := item.NewClearAllUseCase(listStore)
	markAllIncompleteUseCase := item.NewMarkAllIncompleteUseCase(listStore)

	// Budget use cases
	getBudgetStatusUseCase := budget.NewGetStatusUseCase(listStore)
	setBudgetUseCase := budget.NewSetBudgetUseCase(listStore, budgetNotifierOrNil(notifier))
	removeBudgetUseCase := budget.NewRemoveBudgetUseCase(listStore)

	// Report use cases
	trendsUseCase := report.NewGetSpendingTrendsUseCase(listStore, nil)
	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(listStore)
	summaryUseCase := report.NewGetSummaryUseCase(listStore)

	// Suggestion use cases
	listSuggestionsUseCase := suggestion.NewListSuggestionsUseCase()
	resolveCategoryUseCase := suggestion.NewResolveCategoryUseCase(suggester)

	// Controllers
	healthController := controller.NewHealthController(db.RedisHealthChecker(redisClient))
	itemController := controller.NewItemController(
		listItemsUseCase,
		addItemUseCase,
		editItemUseCase,
		toggleItemUseCase,
		toggleSelectionUseCase,
		clearSelectionUseCase,
		deleteItemUseCase,
		deleteSelectedUseCase,
		clearAllUseCase,
		markAllIncompleteUseCase,
	)
	budgetController := controller.NewBudgetController(
		getBudgetStatusUseCase,
		setBudgetUseCase,
		removeBudgetUseCase,
	)
	reportController := controller.NewReportController(
		trendsUseCase,
		breakdownUseCase,
		summaryUseCase,
	)
	suggestionController := controller.NewSuggestionController(
		listSuggestionsUseCase,
		resolveCategoryUseCase,
	)
	categoryController := controller.NewCategoryController()

	return &Injector{
		Config: cfg,
		Store:  listStore,
		Router: router.NewRouter(
			healthController,
			itemController,
			budgetController,
			reportController,
			suggestionController,
			categoryController,
		),
	}
}

// notifierOrNil keeps a nil *Alerter from becoming a non-nil interface.
func notifierOrNil(notifier *budget.Alerter) item.OverrunNotifier {
	if notifier == nil {
		return nil
	}
	return notifier
}

func budgetNotifierOrNil(notifier *budget.Alerter) budget.Notifier {
	if notifier == nil {
		return nil
	}
	return notifier
}
