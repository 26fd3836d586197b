//go:build wireinject
// +build wireinject

package wire

import (
	"campusconnect/internal/config"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideDatabase,
		appSet,
	)
	return nil, nil, nil
}

// InitializeWithDB builds the application over an existing connection.
func InitializeWithDB(cfg *config.Config, db *gorm.DB) (*Application, error) {
	wire.Build(appSet)
	return nil, nil
}
