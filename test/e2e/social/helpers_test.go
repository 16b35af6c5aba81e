package social_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/upchain/social/pkg/socialsdk"
)

/*
 * Common constants and helper functions for social service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "upchain-social-test:latest"

	defaultPassword = "Hunter22!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Social Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Social Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/social/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupSocialContainer starts the social service in a container and returns
// the base URL. Rate limits are loosened so test traffic never trips them;
// use setupSocialContainerWithDefaultRateLimits for rate limit tests.
func setupSocialContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"DATABASE_FILE":    "/social.db",
		"PEPPER_FILE":      "/pepper",
		"SESSION_KEY_FILE": "/session.key",
		"ISSUER":           "upchain-social",
		"ENV":              "test",
		"LOG_LEVEL":        "info",
		"LOG_FORMAT":       "json",
		// Tests make many rapid requests which would otherwise hit the
		// strict production limits.
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupSocialContainerWithDefaultRateLimits starts the social service with
// the production rate limit profiles intact.
func setupSocialContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"DATABASE_FILE":    "/social.db",
		"PEPPER_FILE":      "/pepper",
		"SESSION_KEY_FILE": "/session.key",
		"ISSUER":           "upchain-social",
		"ENV":              "test",
		"LOG_LEVEL":        "info",
		"LOG_FORMAT":       "json",
	})
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAndLogin creates an account and returns an authenticated session.
func registerAndLogin(t *testing.T, client *socialsdk.SDKClient, username, email string) *socialsdk.Session {
	t.Helper()
	ctx := context.Background()

	user, err := client.Register(ctx, username, email, defaultPassword)
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, user.ID, "Registered user should have an id")

	session, err := client.Login(ctx, username, defaultPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session, "Session should not be nil")

	return session
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *socialsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies err is a service error with the given status.
func assertAPIError(t *testing.T, err error, wantStatus int, context string) *socialsdk.APIError {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *socialsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, wantStatus, apiErr.StatusCode, context)
	return apiErr
}
