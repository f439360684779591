package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	sessionactivities "github.com/ssanjae/offline-store/internal/platform/temporal/activities/sessions"
)

type fakeAuthService struct {
	purged int64
	err    error
	calls  int
}

func (f *fakeAuthService) Current(context.Context, string) (*domain.Session, error) { return nil, nil }
func (f *fakeAuthService) StubLogin(context.Context, string) (*domain.Session, error) {
	return nil, nil
}
func (f *fakeAuthService) Reset(context.Context, string) (*domain.Session, error) { return nil, nil }
func (f *fakeAuthService) BeginOAuth(context.Context, string) (*domain.Session, string, error) {
	return nil, "", nil
}
func (f *fakeAuthService) CompleteOAuth(context.Context, string, string, string) (*domain.Session, error) {
	return nil, nil
}
func (f *fakeAuthService) OAuthEnabled() bool { return false }
func (f *fakeAuthService) PurgeExpired(context.Context) (int64, error) {
	f.calls++
	return f.purged, f.err
}

func TestSessionPurgeWorkflow_ReturnsCount(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	svc := &fakeAuthService{purged: 4}
	acts := sessionactivities.NewActivities(svc)
	env.RegisterActivityWithOptions(acts.PurgeExpired, activity.RegisterOptions{Name: sessionactivities.PurgeExpiredActivityName})

	env.ExecuteWorkflow(SessionPurgeWorkflow, SessionPurgeWorkflowInput{TraceID: "trace-1"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var purged int64
	require.NoError(t, env.GetWorkflowResult(&purged))
	require.EqualValues(t, 4, purged)
	require.Equal(t, 1, svc.calls)
}

func TestSessionPurgeWorkflow_RetriesThenFails(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.SetTestTimeout(time.Minute)

	svc := &fakeAuthService{err: errors.New("database unavailable")}
	acts := sessionactivities.NewActivities(svc)
	env.RegisterActivityWithOptions(acts.PurgeExpired, activity.RegisterOptions{Name: sessionactivities.PurgeExpiredActivityName})

	env.ExecuteWorkflow(SessionPurgeWorkflow, SessionPurgeWorkflowInput{})
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	require.GreaterOrEqual(t, svc.calls, 1)
}
