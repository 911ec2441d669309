package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"learnhub_backend/internals/features/admins/model"
)

func TestGetProfile(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodGet, "/api/admin/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Root", out["name"])
	require.Equal(t, "admin@example.com", out["email"])
	require.Equal(t, "Admin", out["role"])
	// Password fields come back empty, never the stored hash.
	require.Equal(t, "", out["password"])
	require.Equal(t, "", out["confirm_password"])
}

func TestGetProfileMissingAccount(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)
	require.NoError(t, db.Delete(&model.AdminModel{}, "id = ?", admin.ID).Error)

	status, out := doJSON(t, app, http.MethodGet, "/api/admin/profile", token, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Profile not found", out["error"])
}

func TestUpdateProfile(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, fiber.Map{
		"name":  "Root Renamed",
		"email": "root@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Profile updated successfully", out["message"])

	profile := out["profile"].(map[string]any)
	require.Equal(t, "Root Renamed", profile["name"])
	require.Equal(t, "root@example.com", profile["email"])
}

func TestUpdateProfileRequiresNameAndEmail(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, fiber.Map{
		"name": "Only Name",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Name and email are required", out["error"])
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, fiber.Map{
		"name":  "Root",
		"email": "JOHN@example.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Email already in use", out["error"])
}

func TestUpdateProfilePasswordRules(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	cases := []struct {
		name string
		body fiber.Map
		want string
	}{
		{
			"missing confirm",
			fiber.Map{"name": "Root", "email": "admin@example.com", "password": "newpass1"},
			"Both password and confirm_password are required",
		},
		{
			"mismatch",
			fiber.Map{"name": "Root", "email": "admin@example.com", "password": "newpass1", "confirm_password": "newpass2"},
			"Passwords do not match",
		},
		{
			"too short",
			fiber.Map{"name": "Root", "email": "admin@example.com", "password": "abc", "confirm_password": "abc"},
			"Password must be at least 6 characters",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, tc.want, out["error"])
		})
	}
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, _ := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, fiber.Map{
		"name":             "Root",
		"email":            "admin@example.com",
		"password":         "newsecret",
		"confirm_password": "newsecret",
	})
	require.Equal(t, http.StatusOK, status)

	var stored model.AdminModel
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
}

func TestUpdateProfileByEmail(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	staff := seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile/JOHN@example.com", token, fiber.Map{
		"name":  "John Updated",
		"email": "john@example.com",
		"role":  "Admin",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Profile updated successfully", out["message"])

	var stored model.AdminModel
	require.NoError(t, db.First(&stored, "id = ?", staff.ID).Error)
	require.Equal(t, "John Updated", stored.Name)
	// An Admin token may promote the account.
	require.Equal(t, model.RoleAdmin, stored.Role)
}

// A Staff token can edit a profile but its role field is ignored.
func TestUpdateProfileRoleChangeRequiresAdminToken(t *testing.T) {
	app, db := newTestApp(t)
	staff := seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, staff)

	status, _ := doJSON(t, app, http.MethodPut, "/api/admin/profile", token, fiber.Map{
		"name":  "John",
		"email": "john@example.com",
		"role":  "Admin",
	})
	require.Equal(t, http.StatusOK, status)

	var stored model.AdminModel
	require.NoError(t, db.First(&stored, "id = ?", staff.ID).Error)
	require.Equal(t, model.RoleStaff, stored.Role)
}

func TestUpdateProfileByEmailNotFound(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/profile/ghost@example.com", token, fiber.Map{
		"name":  "Ghost",
		"email": "ghost@example.com",
	})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Profile not found", out["error"])
}
