package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"learnhub_backend/internals/features/admins/model"
)

func itoa(v int) string { return strconv.Itoa(v) }

func TestCreateStaff(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPost, "/api/admin/staff", token, fiber.Map{
		"name":     "John Helper",
		"email":    "john@example.com",
		"password": "secret123",
		"phone":    "555-0101",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Staff added successfully", out["message"])

	staff := out["staff"].(map[string]any)
	require.Equal(t, "john@example.com", staff["email"])
	require.NotContains(t, staff, "password")

	// Stored password is hashed, never the plaintext.
	var stored model.AdminModel
	require.NoError(t, db.Where("email = ?", "john@example.com").First(&stored).Error)
	require.NotEqual(t, "secret123", stored.Password)
	require.Equal(t, model.RoleStaff, stored.Role)
}

func TestCreateStaffValidation(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPost, "/api/admin/staff", token, fiber.Map{
		"name":  "No Password",
		"email": "nopass@example.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "name, email and password are required", out["error"])
}

func TestCreateStaffDuplicateEmailIsCaseInsensitive(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)

	status, out := doJSON(t, app, http.MethodPost, "/api/admin/staff", token, fiber.Map{
		"name":     "John Again",
		"email":    "JOHN@Example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Email already exists", out["error"])
}

func TestGetAllStaffExcludesAdmins(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	seedAdmin(t, db, "Jane", "jane@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var staff []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&staff))
	require.Len(t, staff, 2)
	require.Equal(t, "john@example.com", staff[0]["email"])
	require.Equal(t, "jane@example.com", staff[1]["email"])
}

func TestUpdateStaff(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	staff := seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/staff/"+itoa(staff.ID), token, fiber.Map{
		"name":  "John Renamed",
		"email": "john.renamed@example.com",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Staff updated successfully", out["message"])

	var stored model.AdminModel
	require.NoError(t, db.First(&stored, "id = ?", staff.ID).Error)
	require.Equal(t, "John Renamed", stored.Name)
	require.Equal(t, "john.renamed@example.com", stored.Email)
}

func TestUpdateStaffNotFound(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/staff/9999", token, fiber.Map{
		"name":  "Ghost",
		"email": "ghost@example.com",
	})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Staff not found", out["error"])
}

// Admin accounts are not addressable through the staff endpoints even by id.
func TestUpdateStaffCannotTouchAdmin(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodPut, "/api/admin/staff/"+itoa(admin.ID), token, fiber.Map{
		"name":  "Hijacked",
		"email": "hijacked@example.com",
	})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Staff not found", out["error"])
}

func TestDeleteStaff(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	john := seedAdmin(t, db, "John", "john@example.com", "secret123", model.RoleStaff)
	jane := seedAdmin(t, db, "Jane", "jane@example.com", "secret123", model.RoleStaff)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodDelete, "/api/admin/staff", token, fiber.Map{
		"ids": []int{john.ID, jane.ID, admin.ID},
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Staff deleted successfully", out["message"])

	var remaining int64
	require.NoError(t, db.Model(&model.AdminModel{}).Count(&remaining).Error)
	// The admin id in the list is ignored: only Staff rows are deletable here.
	require.Equal(t, int64(1), remaining)
}

func TestDeleteStaffEmptyIDs(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db, "Root", "admin@example.com", "secret123", model.RoleAdmin)
	token := signTestToken(t, admin)

	status, out := doJSON(t, app, http.MethodDelete, "/api/admin/staff", token, fiber.Map{
		"ids": []int{},
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "No staff IDs provided", out["error"])
}
