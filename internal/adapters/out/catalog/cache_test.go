package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/adapters/out/catalog"
	"dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) ActiveSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func TestCachedClient_RedisDownFallsThrough(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	next := new(MockCatalogClient)
	next.On("ActiveSKUs", mock.Anything, []string{"SKU-A"}).Return(map[string]bool{"SKU-A": true}, nil).Once()

	client := catalog.NewCachedClient(next, rdb, time.Minute, zap.NewNop())
	got, err := client.ActiveSKUs(context.Background(), []string{"SKU-A"})

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"SKU-A": true}, got)
	next.AssertExpectations(t)
}

type CachedClientIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
}

func (suite *CachedClientIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.container = container
	suite.Require().NoError(err)

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.rdb = redis.NewClient(&redis.Options{Addr: endpoint})
}

func (suite *CachedClientIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushAll(context.Background()).Err())
}

func (suite *CachedClientIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		_ = suite.rdb.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CachedClientIntegrationTestSuite) TestSecondLookupIsServedFromCache() {
	ctx := context.Background()
	next := new(MockCatalogClient)
	next.On("ActiveSKUs", mock.Anything, []string{"SKU-A", "SKU-B"}).
		Return(map[string]bool{"SKU-A": true, "SKU-B": false}, nil).Once()
	next.On("ActiveSKUs", mock.Anything, []string{"SKU-C"}).
		Return(map[string]bool{"SKU-C": true}, nil).Once()

	client := catalog.NewCachedClient(next, suite.rdb, time.Minute, zap.NewNop())

	first, err := client.ActiveSKUs(ctx, []string{"SKU-A", "SKU-B"})
	suite.Require().NoError(err)
	suite.Equal(map[string]bool{"SKU-A": true, "SKU-B": false}, first)

	second, err := client.ActiveSKUs(ctx, []string{"SKU-A", "SKU-B", "SKU-C"})
	suite.Require().NoError(err)
	suite.Equal(map[string]bool{"SKU-A": true, "SKU-B": false, "SKU-C": true}, second)

	ttl, err := suite.rdb.TTL(ctx, "catalog:sku:SKU-A").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)
	next.AssertExpectations(suite.T())
}

func (suite *CachedClientIntegrationTestSuite) TestCatalogFailureIsNotCached() {
	ctx := context.Background()
	unavailable := errs.NewDependencyUnavailableError("catalog", errors.New("connection refused"))
	next := new(MockCatalogClient)
	next.On("ActiveSKUs", mock.Anything, []string{"SKU-A"}).Return(nil, unavailable).Once()
	next.On("ActiveSKUs", mock.Anything, []string{"SKU-A"}).Return(map[string]bool{"SKU-A": true}, nil).Once()

	client := catalog.NewCachedClient(next, suite.rdb, time.Minute, zap.NewNop())

	_, err := client.ActiveSKUs(ctx, []string{"SKU-A"})
	suite.ErrorIs(err, errs.ErrDependencyUnavailable)

	got, err := client.ActiveSKUs(ctx, []string{"SKU-A"})
	suite.Require().NoError(err)
	suite.True(got["SKU-A"])
	next.AssertExpectations(suite.T())
}

func TestCachedClientIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(CachedClientIntegrationTestSuite))
}
