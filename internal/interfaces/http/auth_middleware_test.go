package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	apphttp "github.com/davinlab/salonlink-api/internal/interfaces/http"
	pkgjwt "github.com/davinlab/salonlink-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testBranchID  = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "salonlink-test"
	testExpMin    = 60
)

// fakeKeyResolver maps API key values to user IDs.
type fakeKeyResolver struct {
	keys map[string]string
}

func (f *fakeKeyResolver) ResolveUserID(_ context.Context, key string) (string, error) {
	return f.keys[key], nil
}

// fakeUserLoader returns canned profiles by ID.
type fakeUserLoader struct {
	users map[string]*dto.UserResponse
}

func (f *fakeUserLoader) GetByID(_ context.Context, id string) (*dto.UserResponse, error) {
	return f.users[id], nil
}

// fakeApprovalChecker returns a fixed approved flag per user.
type fakeApprovalChecker struct {
	approved map[string]bool
}

func (f *fakeApprovalChecker) IsApproved(_ context.Context, userID string) (bool, error) {
	return f.approved[userID], nil
}

// buildTestApp builds a minimal Fiber app with auth + role middlewares and a
// dummy handler that returns 200 once both pass.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, resolver, loader),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_HQAccessesHQRoute(t *testing.T) {
	app := buildTestApp("HQ")
	resp := doRequest(t, app, tokenForRole(t, "HQ"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "HQ", body["role"])
}

func TestRequireRole_OwnerAccessesSharedRoute(t *testing.T) {
	app := buildTestApp("HQ", "OWNER")
	resp := doRequest(t, app, tokenForRole(t, "OWNER"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_StaffBlockedOnHQRoute(t *testing.T) {
	app := buildTestApp("HQ")
	resp := doRequest(t, app, tokenForRole(t, "STAFF"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"STAFF must not reach an HQ-only route")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_OwnerBlockedOnHQRoute(t *testing.T) {
	app := buildTestApp("HQ")
	resp := doRequest(t, app, tokenForRole(t, "OWNER"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_TokenWithoutRole_Returns401(t *testing.T) {
	app := buildTestApp("HQ")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_NoCredentials_Returns401(t *testing.T) {
	app := buildTestApp("HQ")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_MalformedToken_Returns401(t *testing.T) {
	app := buildTestApp("HQ")
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, resolver, loader), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"branch_id": apphttp.GetBranchID(c),
			"role":      apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "OWNER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testBranchID, body["branch_id"])
	assert.Equal(t, "OWNER", body["role"])
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	app := fiber.New()
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, resolver, loader), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, "STAFF", testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tok})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"the session cookie alone must authenticate the request")
}

func TestAuthMiddleware_APIKeyResolvesOwner(t *testing.T) {
	branchID := testBranchID
	resolver := &fakeKeyResolver{keys: map[string]string{"live-key": testUserID}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{
		testUserID: {ID: testUserID, Role: "OWNER", BranchID: &branchID},
	}}

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, resolver, loader), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-API-Key", "live-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "OWNER", body["role"])
}

func TestAuthMiddleware_RevokedAPIKey_Returns401(t *testing.T) {
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, resolver, loader), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-API-Key", "revoked-or-unknown")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// The gate distinguishes "not logged in" (401) from "logged in but not yet
// approved" (403) so the client can route to login vs the holding page.
func TestRequireApproved_GateStatusCodes(t *testing.T) {
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}
	checker := &fakeApprovalChecker{approved: map[string]bool{testUserID: false}}

	app := fiber.New()
	app.Get("/business",
		apphttp.AuthMiddleware(testJWTSecret, resolver, loader),
		apphttp.RequireApproved(checker),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	// No credentials at all: 401.
	req := httptest.NewRequest(http.MethodGet, "/business", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token, unapproved profile: 403 PENDING_APPROVAL.
	req = httptest.NewRequest(http.MethodGet, "/business", nil)
	req.Header.Set("Authorization", tokenForRole(t, "OWNER"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PENDING_APPROVAL")
}

func TestRequireApproved_ApprovedPasses(t *testing.T) {
	resolver := &fakeKeyResolver{keys: map[string]string{}}
	loader := &fakeUserLoader{users: map[string]*dto.UserResponse{}}
	checker := &fakeApprovalChecker{approved: map[string]bool{testUserID: true}}

	app := fiber.New()
	app.Get("/business",
		apphttp.AuthMiddleware(testJWTSecret, resolver, loader),
		apphttp.RequireApproved(checker),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/business", nil)
	req.Header.Set("Authorization", tokenForRole(t, "STAFF"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWT_GenerateAndParse_WithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, "STAFF", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, branchID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testBranchID, branchID)
	assert.Equal(t, "STAFF", role)
}

func TestJWT_ExpiredToken_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, "HQ", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBranchID, "HQ", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}
