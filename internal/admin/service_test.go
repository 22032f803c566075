package admin

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/axiomai/axiom-server/internal/chat"
	"github.com/axiomai/axiom-server/internal/models"
	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &chat.Chat{}, &chat.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestDashboard_Aggregates(t *testing.T) {
	db := openTestDB(t)

	users := []models.User{
		{Name: "a", Email: "a@x.io", PasswordHash: "h", Role: models.RoleAdmin, IsActive: true},
		{Name: "b", Email: "b@x.io", PasswordHash: "h", Role: models.RoleUser, IsActive: true},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	chats := []chat.Chat{
		{ChatID: "01AAAAAAAAAAAAAAAAAAAAAAAA", UserID: 1, Title: "t1", Mode: "chat"},
		{ChatID: "01BBBBBBBBBBBBBBBBBBBBBBBB", UserID: 1, Title: "t2", Mode: "chat"},
		{ChatID: "01CCCCCCCCCCCCCCCCCCCCCCCC", UserID: 2, Title: "t3", Mode: "code"},
	}
	if err := db.Create(&chats).Error; err != nil {
		t.Fatalf("seed chats: %v", err)
	}

	msgs := []chat.Message{
		{ChatID: chats[0].ChatID, Role: "user", Content: "hi"},
		{ChatID: chats[0].ChatID, Role: "assistant", Content: "hello"},
		{ChatID: chats[2].ChatID, Role: "user", Content: "code please"},
	}
	if err := db.Create(&msgs).Error; err != nil {
		t.Fatalf("seed messages: %v", err)
	}

	svc := NewService(db, nil, 30*time.Second)
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if stats.Users.Total != 2 {
		t.Errorf("users.total = %d, want 2", stats.Users.Total)
	}
	if stats.Chats.Total != 3 {
		t.Errorf("chats.total = %d, want 3", stats.Chats.Total)
	}
	if stats.Messages.Total != 3 {
		t.Errorf("messages.total = %d, want 3", stats.Messages.Total)
	}

	want := map[string]int64{"chat": 2, "code": 1}
	if len(stats.Chats.ByMode) != len(want) {
		t.Fatalf("byMode = %+v, want %v", stats.Chats.ByMode, want)
	}
	for _, mc := range stats.Chats.ByMode {
		if want[mc.Name] != mc.Value {
			t.Errorf("byMode[%s] = %d, want %d", mc.Name, mc.Value, want[mc.Name])
		}
	}
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	svc := NewService(openTestDB(t), nil, time.Second)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.Users.Total != 0 || stats.Chats.Total != 0 || stats.Messages.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.Chats.ByMode == nil {
		t.Fatalf("byMode should be an empty slice, not nil")
	}
}
