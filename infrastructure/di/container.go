package di

import (
	"go.uber.org/zap"

	"freshtrack-backend/application/jobs"
	"freshtrack-backend/application/ports"
	"freshtrack-backend/application/services"
	"freshtrack-backend/infrastructure/config"
	"freshtrack-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	ProfileRepo      ports.ProfileRepository
	ItemRepo         ports.ItemRepository
	Notifier         ports.NotificationService
	TokenService     *auth.TokenService
	AuthService      *services.AuthService
	InventoryService *services.InventoryService
	ExpiryNotifier   *jobs.ExpiryNotifier
}
