package service

import (
	"Tripper/dao"
	"Tripper/internal/testutil"
	"Tripper/models"
	"Tripper/types"
	"context"
	"testing"

	"gorm.io/gorm"
)

func newAdminService(t *testing.T, db *gorm.DB) *AdminService {
	t.Helper()

	users := dao.NewUsers(db)
	return &AdminService{
		UserDAO: users,
		User: &UserService{
			UserDAO:      users,
			ItineraryDAO: dao.NewItineraryDAO(db),
		},
	}
}

func makeAdmin(t *testing.T, db *gorm.DB, username string) *models.Users {
	t.Helper()

	user := testutil.CreateUser(t, db, username)
	if err := db.Model(&models.Users{}).
		Where("user_id = ?", user.UserID).
		Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("promote %s: %v", username, err)
	}
	user.Role = models.RoleAdmin
	return user
}

func TestAdminGuardRejectsNonAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAdminService(t, db)
	alice := testutil.CreateUser(t, db, "alice")

	_, _, err := svc.ListUsers(context.Background(), alice.UserID, &types.AdminUserListQuery{})
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("expected 403, got %d", code)
	}
	_, err = svc.GetUser(context.Background(), alice.UserID, alice.UserID)
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("get: expected 403, got %d", code)
	}
}

func TestAdminCreateAndListUsers(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAdminService(t, db)
	root := makeAdmin(t, db, "root")

	created, err := svc.CreateUser(context.Background(), root.UserID, &types.AdminCreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Role != models.RoleUser {
		t.Errorf("default role = %q", created.Role)
	}

	_, err = svc.CreateUser(context.Background(), root.UserID, &types.AdminCreateUserRequest{
		Username: "carol2",
		Email:    "carol@example.com",
		Password: "secret-pass",
	})
	if code := bizCode(t, err); code != 409 {
		t.Fatalf("duplicate email: expected 409, got %d", code)
	}

	items, page, err := svc.ListUsers(context.Background(), root.UserID, &types.AdminUserListQuery{})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(items) != 2 || page.TotalPages != 1 {
		t.Fatalf("expected 2 users on 1 page, got %d (pages %d)", len(items), page.TotalPages)
	}

	items, _, err = svc.ListUsers(context.Background(), root.UserID,
		&types.AdminUserListQuery{Keyword: "carol"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(items) != 1 || items[0].Username != "carol" {
		t.Fatalf("keyword filter returned %+v", items)
	}
}

func TestAdminUpdateUserRole(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAdminService(t, db)
	root := makeAdmin(t, db, "root")
	bob := testutil.CreateUser(t, db, "bob")

	role := models.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), root.UserID, bob.UserID,
		&types.AdminUpdateUserRequest{Role: &role})
	if err != nil {
		t.Fatalf("promote bob: %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Errorf("bob role = %q", updated.Role)
	}

	// 管理员不能摘掉自己的角色
	demote := models.RoleUser
	_, err = svc.UpdateUser(context.Background(), root.UserID, root.UserID,
		&types.AdminUpdateUserRequest{Role: &demote})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("self demote: expected 400, got %d", code)
	}

	_, err = svc.UpdateUser(context.Background(), root.UserID, "missing-id",
		&types.AdminUpdateUserRequest{Role: &role})
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("missing user: expected 404, got %d", code)
	}
}

func TestAdminDeleteUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAdminService(t, db)
	root := makeAdmin(t, db, "root")
	bob := testutil.CreateUser(t, db, "bob")
	it := seedItinerary(t, db, bob.UserID, "2026-01-01")

	if err := svc.DeleteUser(context.Background(), root.UserID, root.UserID); err == nil {
		t.Fatal("expected self delete to fail")
	}

	if err := svc.DeleteUser(context.Background(), root.UserID, bob.UserID); err != nil {
		t.Fatalf("delete bob: %v", err)
	}

	var users int64
	db.Model(&models.Users{}).Where("user_id = ?", bob.UserID).Count(&users)
	if users != 0 {
		t.Error("bob still exists")
	}
	var itineraries int64
	db.Model(&models.Itinerary{}).Where("itinerary_id = ?", it.ItineraryID).Count(&itineraries)
	if itineraries != 0 {
		t.Error("bob's itinerary survived the delete")
	}

	err := svc.DeleteUser(context.Background(), root.UserID, bob.UserID)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("deleted user: expected 404, got %d", code)
	}
}
