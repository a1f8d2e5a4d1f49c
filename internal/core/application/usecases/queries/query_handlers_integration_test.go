package queries_test

import (
	"context"
	"testing"
	"time"

	"waybill/internal/adapters/out/postgres/translogrepo"
	"waybill/internal/adapters/out/postgres/waybillrepo"
	"waybill/internal/core/application/usecases/queries"
	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubTracker satisfies the repositories' tracker dependency; query tests do
// not care about aggregate tracking.
type stubTracker struct{}

func (stubTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against a
// real PostgreSQL schema populated through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	waybillRepo      *waybillrepo.GormWaybillRepository
	logRepo          *translogrepo.GormTransitionLogRepository
	getHandler       queries.GetWaybillQueryHandler
	historyHandler   queries.GetTransitionHistoryQueryHandler
	uncompletedQuery queries.GetUncompletedWaybillsQueryHandler
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&waybillrepo.WaybillDTO{}, &translogrepo.TransitionLogDTO{})
	suite.Require().NoError(err)

	suite.waybillRepo = waybillrepo.NewGormWaybillRepository(db, stubTracker{})
	suite.logRepo = translogrepo.NewGormTransitionLogRepository(db)
	suite.getHandler = queries.NewGetWaybillQueryHandler(db)
	suite.historyHandler = queries.NewGetTransitionHistoryQueryHandler(db)
	suite.uncompletedQuery = queries.NewGetUncompletedWaybillsQueryHandler(db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE waybills, transition_logs").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetWaybill_ExistingWaybill_ReturnsProjection() {
	ctx := context.Background()
	wb := suite.addWaybillInStatus(ctx, waybill.Assigned, 2)

	query, err := queries.NewGetWaybillQuery(wb.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(wb.ID()))
	suite.Equal(waybill.Assigned, result.Status)
	suite.Equal(int64(2), result.Version)
	suite.False(result.UpdatedAt.IsZero())
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetWaybill_UnknownWaybill_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetWaybillQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetTransitionHistory_ReturnsEntriesOldestFirst() {
	ctx := context.Background()
	wb := suite.addWaybillInStatus(ctx, waybill.InTransit, 4)

	steps := []struct {
		from waybill.Status
		to   waybill.Status
	}{
		{waybill.Created, waybill.Paid},
		{waybill.Paid, waybill.Assigned},
		{waybill.Assigned, waybill.PickedUp},
		{waybill.PickedUp, waybill.InTransit},
	}
	for _, step := range steps {
		entry, err := waybill.NewTransitionLogEntry(wb.ID(), step.from, step.to, "agent1", "", time.Now())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.logRepo.Append(ctx, entry))
	}

	query, err := queries.NewGetTransitionHistoryQuery(wb.ID())
	suite.Require().NoError(err)

	history, err := suite.historyHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, len(steps))
	for i, step := range steps {
		suite.Equal(step.from, history[i].FromStatus)
		suite.Equal(step.to, history[i].ToStatus)
		suite.Equal("agent1", history[i].Operator)
		suite.True(history[i].WaybillID.IsEqual(wb.ID()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetTransitionHistory_UnknownWaybill_ReturnsEmptySlice() {
	ctx := context.Background()

	query, err := queries.NewGetTransitionHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	history, err := suite.historyHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUncompletedWaybills_FiltersTerminalStatuses() {
	ctx := context.Background()

	inFlight := []*waybill.Waybill{
		suite.addWaybillInStatus(ctx, waybill.Created, 0),
		suite.addWaybillInStatus(ctx, waybill.PickedUp, 3),
		suite.addWaybillInStatus(ctx, waybill.Signed, 6),
	}
	suite.addWaybillInStatus(ctx, waybill.Completed, 7)
	suite.addWaybillInStatus(ctx, waybill.Cancelled, 2)

	query := queries.NewGetUncompletedWaybillsQuery()

	result, err := suite.uncompletedQuery.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, len(inFlight))

	resultIDs := make(map[string]waybill.Status)
	for _, r := range result {
		resultIDs[r.ID.String()] = r.Status
	}
	for _, wb := range inFlight {
		status, ok := resultIDs[wb.ID().String()]
		suite.True(ok, "waybill %s should be in results", wb.ID())
		suite.Equal(wb.Status(), status)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUncompletedWaybills_EmptyDatabase_ReturnsEmptySlice() {
	ctx := context.Background()

	query := queries.NewGetUncompletedWaybillsQuery()

	result, err := suite.uncompletedQuery.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	ctx := context.Background()
	invalidQuery := queries.GetUncompletedWaybillsQuery{}

	result, err := suite.uncompletedQuery.Handle(ctx, invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUncompletedWaybillsQuery constructor")
}

func (suite *QueryHandlersIntegrationTestSuite) addWaybillInStatus(
	ctx context.Context,
	status waybill.Status,
	version int64,
) *waybill.Waybill {
	wb, err := waybill.RestoreWaybill(kernel.NewUUID(), status, version, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.waybillRepo.Add(ctx, wb))
	return wb
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
