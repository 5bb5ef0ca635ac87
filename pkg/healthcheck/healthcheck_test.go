package healthcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

func staticChecker(status Status, message string) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		return Check{Status: status, Message: message, LastChecked: time.Now()}
	})
}

// HealthCheckTestSuite covers aggregation of concurrent checks
type HealthCheckTestSuite struct {
	suite.Suite
	hc *HealthCheck
}

func (suite *HealthCheckTestSuite) SetupTest() {
	suite.hc = New("1.0.0", zaptest.NewLogger(suite.T()))
}

func (suite *HealthCheckTestSuite) TestCheck_NoCheckersIsHealthy() {
	// Act
	resp := suite.hc.Check(context.Background())

	// Assert
	assert.Equal(suite.T(), StatusHealthy, resp.Status)
	assert.Equal(suite.T(), "1.0.0", resp.Version)
	assert.Empty(suite.T(), resp.Checks)
}

func (suite *HealthCheckTestSuite) TestCheck_WorstStatusWins() {
	// Arrange
	suite.hc.Register("recipes", staticChecker(StatusDegraded, "thin pool"))
	suite.hc.Register("catalog", staticChecker(StatusHealthy, ""))

	// Act
	resp := suite.hc.Check(context.Background())

	// Assert
	assert.Equal(suite.T(), StatusDegraded, resp.Status)
	require.Len(suite.T(), resp.Checks, 2)
	assert.Equal(suite.T(), "catalog", resp.Checks[0].Name)
	assert.Equal(suite.T(), "recipes", resp.Checks[1].Name)

	// Arrange
	suite.hc.Register("profile", staticChecker(StatusUnhealthy, "missing"))

	// Act
	resp = suite.hc.Check(context.Background())

	// Assert
	assert.Equal(suite.T(), StatusUnhealthy, resp.Status)
}

func (suite *HealthCheckTestSuite) TestCheck_TimeoutReachesCheckers() {
	// Arrange
	suite.hc.SetTimeout(10 * time.Millisecond)
	suite.hc.Register("slow", CheckerFunc(func(ctx context.Context) Check {
		<-ctx.Done()
		return Check{Status: StatusUnhealthy, Message: ctx.Err().Error()}
	}))

	// Act
	resp := suite.hc.Check(context.Background())

	// Assert
	assert.Equal(suite.T(), StatusUnhealthy, resp.Status)
	assert.Equal(suite.T(), context.DeadlineExceeded.Error(), resp.Checks[0].Message)
}

func TestHealthCheckTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckTestSuite))
}
