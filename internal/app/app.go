package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasarhub/pasar/internal/pkg/clock"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/goroutine"
	"github.com/pasarhub/pasar/internal/pkg/hash"
	"github.com/pasarhub/pasar/internal/pkg/idempotency"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/jwt"
	"github.com/pasarhub/pasar/internal/pkg/mail"
	"github.com/pasarhub/pasar/internal/pkg/messaging"
	"github.com/pasarhub/pasar/internal/pkg/otp"
	"github.com/pasarhub/pasar/internal/pkg/pgxcasbin"
	"github.com/pasarhub/pasar/internal/pkg/router"
	"github.com/pasarhub/pasar/internal/pkg/storage"
	"github.com/pasarhub/pasar/internal/pkg/uid"
	"github.com/pasarhub/pasar/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn        *pgxpool.Pool
	cacheConn     *redis.Client
	idemp         idempotency.Idempotency
	mail          mail.Mail
	messaging     messaging.Messaging
	storage       storage.Storage
	casbin        *casbin.Enforcer
	casbinWatcher *pgxcasbin.Watcher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
