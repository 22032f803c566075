package handlers

import (
	"github.com/axiomai/axiom-server/internal/admin"
	"github.com/axiomai/axiom-server/internal/chat"
	"github.com/axiomai/axiom-server/internal/config"
	"github.com/axiomai/axiom-server/internal/store/redisstore"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Cfg      config.Config
	ChatSvc  *chat.Service
	AdminSvc *admin.Service
}

// NewHandler wires the services. completer is the provider router; rds may be
// nil, in which case dashboard stats are computed on every request.
func NewHandler(gdb *gorm.DB, cfg config.Config, rds *redisstore.Store, completer chat.Completer) *Handler {
	repo := chat.NewRepo(gdb)
	return &Handler{
		DB:       gdb,
		Cfg:      cfg,
		ChatSvc:  chat.NewService(repo, completer),
		AdminSvc: admin.NewService(gdb, rds, cfg.DashboardCacheTTL),
	}
}
