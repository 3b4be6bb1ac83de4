package service

import (
	"Tripper/dao"
	"Tripper/internal/testutil"
	"Tripper/models"
	"Tripper/types"
	"context"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newShareService(t *testing.T, db *gorm.DB) *ShareService {
	t.Helper()

	itineraryDAO := dao.NewItineraryDAO(db)
	shareDAO := dao.NewItineraryShareDAO(db)
	return &ShareService{
		ShareDAO:     shareDAO,
		ItineraryDAO: itineraryDAO,
		UserDAO:      dao.NewUsers(db),
		Place:        newPlaceService(db),
		Access: &AccessService{
			ItineraryDAO: itineraryDAO,
			ShareDAO:     shareDAO,
		},
		Fcm: &FcmService{TokenDAO: dao.NewFCMTokenDAO(db)},
	}
}

func TestCreateShareOwnerOnly(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	// 非所有者不能分享
	_, err := svc.Create(context.Background(), bob.UserID, &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: carol.UserID,
		Permission:       "view",
	})
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("non-owner: expected 403, got %d", code)
	}

	resp, err := svc.Create(context.Background(), owner.UserID, &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: bob.UserID,
		Permission:       "edit",
	})
	if err != nil {
		t.Fatalf("owner create share: %v", err)
	}
	if resp.Permission != "edit" {
		t.Errorf("permission = %s, want edit", resp.Permission)
	}
	if resp.SharedWithUser == nil || resp.SharedWithUser.Username != "bob" {
		t.Errorf("expected shared_with_user bob, got %+v", resp.SharedWithUser)
	}
}

func TestCreateShareRejectsSelfAndDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	_, err := svc.Create(context.Background(), owner.UserID, &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: owner.UserID,
		Permission:       "view",
	})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("self share: expected 400, got %d", code)
	}

	req := &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: bob.UserID,
		Permission:       "view",
	}
	if _, err := svc.Create(context.Background(), owner.UserID, req); err != nil {
		t.Fatalf("first share: %v", err)
	}
	_, err = svc.Create(context.Background(), owner.UserID, req)
	if code := bizCode(t, err); code != 409 {
		t.Fatalf("duplicate share: expected 409, got %d", code)
	}
}

func TestCreateShareUnknownUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	_, err := svc.Create(context.Background(), owner.UserID, &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: "no-such-user",
		Permission:       "view",
	})
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUpdateAndDeleteShare(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	created, err := svc.Create(context.Background(), owner.UserID, &types.CreateShareRequest{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: bob.UserID,
		Permission:       "view",
	})
	if err != nil {
		t.Fatalf("create share: %v", err)
	}

	// 被分享人改不了自己的权限
	err = svc.Update(context.Background(), bob.UserID, created.ShareID,
		&types.UpdateShareRequest{Permission: "edit"})
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("non-owner update: expected 403, got %d", code)
	}

	err = svc.Update(context.Background(), owner.UserID, created.ShareID,
		&types.UpdateShareRequest{Permission: "edit"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}

	if err := svc.Delete(context.Background(), owner.UserID, created.ShareID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	err = svc.Delete(context.Background(), owner.UserID, created.ShareID)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("deleted share: expected 404, got %d", code)
	}
}

func TestSharedWithMeCarriesPermission(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	first := seedItinerary(t, db, owner.UserID, "2026-01-01")
	second := seedItinerary(t, db, owner.UserID, "2026-02-01")

	for itID, perm := range map[uint64]string{
		first.ItineraryID:  "view",
		second.ItineraryID: "edit",
	} {
		_, err := svc.Create(context.Background(), owner.UserID, &types.CreateShareRequest{
			ItineraryID:      itID,
			SharedWithUserID: bob.UserID,
			Permission:       perm,
		})
		if err != nil {
			t.Fatalf("create share: %v", err)
		}
	}

	items, page, err := svc.SharedWithMe(context.Background(), bob.UserID, 1, 10)
	if err != nil {
		t.Fatalf("shared with me: %v", err)
	}
	if len(items) != 2 || page.TotalPages != 1 {
		t.Fatalf("expected 2 items on 1 page, got %d (pages %d)", len(items), page.TotalPages)
	}
	perms := map[uint64]string{}
	for _, item := range items {
		perms[item.ItineraryID] = item.Capability
	}
	if perms[first.ItineraryID] != "view" || perms[second.ItineraryID] != "edit" {
		t.Errorf("capabilities = %v", perms)
	}
}

func TestShareSchemaRejectsDuplicateRow(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	row := func() *models.ItineraryShare {
		now := time.Now()
		return &models.ItineraryShare{
			ItineraryID:      it.ItineraryID,
			SharedWithUserID: bob.UserID,
			Permission:       models.PermissionView,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}
	if err := db.Create(row()).Error; err != nil {
		t.Fatalf("first share row: %v", err)
	}
	// 业务层的查重之外，唯一索引兜底并发写入
	if err := db.Create(row()).Error; err == nil {
		t.Fatal("schema accepted a second share row for the same (itinerary, user) pair")
	}
}

func TestSearchUsersExcludesSelf(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newShareService(t, db)
	alice := testutil.CreateUser(t, db, "traveler_alice")
	testutil.CreateUser(t, db, "traveler_bob")

	users, err := svc.SearchUsers(context.Background(), alice.UserID,
		&types.SearchUsersQuery{Keyword: "traveler"})
	if err != nil {
		t.Fatalf("search users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "traveler_bob" {
		t.Fatalf("expected only traveler_bob, got %+v", users)
	}
}
