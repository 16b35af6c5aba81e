package social_test

import (
	"testing"

	"github.com/upchain/social/pkg/socialsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh
// instance.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupSocialContainer(t)
	defer cleanup()

	client := socialsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check reports the database as
// reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupSocialContainer(t)
	defer cleanup()

	client := socialsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Readyz endpoint is healthy, database: %s", health.Database)
}
