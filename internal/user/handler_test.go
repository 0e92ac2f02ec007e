package user

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

var testSecret = []byte("test-secret")

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	service := NewService(NewInMemoryRepository(nil))
	handler := NewHandler(service, testSecret)
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app, service
}

func signUpBody() string {
	return `{"firstName":"Jamie","lastName":"Lee","email":"jamie@example.com","password":"correct horse"}`
}

func TestSignUpReturnsTokenAndOmitsPassword(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(signUpBody()))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Token == "" {
		t.Error("expected a session token")
	}
	if body.User.Password != "" {
		t.Error("password hash must not leave the gateway")
	}
	if body.User.Role != RoleCustomer {
		t.Errorf("expected default role %s, got %s", RoleCustomer, body.User.Role)
	}
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	for i, want := range []int{fiber.StatusCreated, fiber.StatusConflict} {
		req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(signUpBody()))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != want {
			t.Fatalf("attempt %d: expected %d, got %d", i, want, resp.StatusCode)
		}
	}
}

func TestSignUpValidation(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-up",
		strings.NewReader(`{"firstName":"","email":"not-an-email","password":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"firstName", "email", "password"} {
		if _, ok := body.Errors[field]; !ok {
			t.Errorf("expected a validation error for %s", field)
		}
	}
}

func TestSignInVerifiesStoredHash(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(signUpBody()))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"correct password", `{"email":"jamie@example.com","password":"correct horse"}`, fiber.StatusOK},
		{"wrong password", `{"email":"jamie@example.com","password":"battery staple"}`, fiber.StatusUnauthorized},
		{"unknown account", `{"email":"nobody@example.com","password":"correct horse"}`, fiber.StatusUnauthorized},
		{"email case does not matter", `{"email":"JAMIE@Example.com","password":"correct horse"}`, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestAuthenticateRejectsSuspendedAccount(t *testing.T) {
	_, service := newTestApp(t)

	created, err := service.Register(context.Background(), User{
		FirstName: "Sam", Email: "sam@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.UpdateStatus(context.Background(), created.ID, StatusSuspended); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Authenticate(context.Background(), "sam@example.com", "correct horse"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateProfileKeepsCredentialFields(t *testing.T) {
	_, service := newTestApp(t)

	created, err := service.Register(context.Background(), User{
		FirstName: "Sam", Email: "sam@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := service.UpdateProfile(context.Background(), created.ID, User{
		FirstName: "Samuel",
		Email:     "hijack@example.com",
		Role:      RoleAdmin,
		City:      "Portland",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.FirstName != "Samuel" || updated.City != "Portland" {
		t.Errorf("contact fields not updated: %+v", updated)
	}
	if updated.Email != "sam@example.com" {
		t.Errorf("email must not change through profile update, got %s", updated.Email)
	}
	if updated.Role != RoleCustomer {
		t.Errorf("role must not change through profile update, got %s", updated.Role)
	}

	if _, err := service.Authenticate(context.Background(), "sam@example.com", "correct horse"); err != nil {
		t.Errorf("password should survive a profile update: %v", err)
	}
}
