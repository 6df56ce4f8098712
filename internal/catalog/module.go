package catalog

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasarhub/pasar/internal/catalog/inbound"
	"github.com/pasarhub/pasar/internal/catalog/outbound/db"
	"github.com/pasarhub/pasar/internal/catalog/usecase"
	"github.com/pasarhub/pasar/internal/pkg/clock"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/router"
	"github.com/pasarhub/pasar/internal/pkg/storage"
	"github.com/pasarhub/pasar/internal/pkg/uid"
	"github.com/pasarhub/pasar/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbProduct := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbProduct,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Storage:    dep.Storage,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Enforcer:   dep.Enforcer,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
