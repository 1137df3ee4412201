package cmd

import (
	"context"
	"errors"
	"log/slog"

	apphttp "setralog/internal/adapters/in/http"
	"setralog/internal/adapters/out/credentials"
	"setralog/internal/adapters/out/mail"
	"setralog/internal/adapters/out/memory/identitystore"
	"setralog/internal/adapters/out/memory/orderstore"
	"setralog/internal/adapters/out/postgres"
	pgsnapshot "setralog/internal/adapters/out/postgres/snapshotrepo"
	redissnapshot "setralog/internal/adapters/out/redis/snapshotrepo"
	"setralog/internal/adapters/out/tokens"
	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"
	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
	"setralog/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	identities *identitystore.Store
	orders     *orderstore.Store

	hasher   ports.CredentialHasher
	tokens   *tokens.Issuer
	notifier ports.PasswordResetNotifier
	policy   services.OrderAccessPolicy
}

// NewCompositionRoot builds the stores and adapters. mirror may be nil when snapshots are
// disabled.
func NewCompositionRoot(config Config, mirror ports.SnapshotMirror, logger *slog.Logger) (CompositionRoot, error) {
	hasher, err := credentials.New(config.CredentialsMode)
	if err != nil {
		return CompositionRoot{}, err
	}
	issuer, err := tokens.NewIssuer(tokens.Config{
		Secret:    config.JWTSecret,
		Issuer:    config.JWTIssuer,
		AccessTTL: config.AccessTokenTTL,
		ResetTTL:  config.ResetTokenTTL,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config: config,
		logger: logger,
		identities: identitystore.New(
			identitystore.WithMirror(mirror),
			identitystore.WithLogger(logger),
			identitystore.WithUniqueOnUpdate(config.EnforceUniqueOnUpdate),
			identitystore.WithAdminSignup(config.AllowAdminSignup),
		),
		orders: orderstore.New(
			orderstore.WithMirror(mirror),
			orderstore.WithLogger(logger),
		),
		hasher:   hasher,
		tokens:   issuer,
		notifier: mail.NewLogNotifier(logger),
		policy:   services.NewOrderAccessPolicy(config.OrderTransitionMode),
	}, nil
}

// OpenSnapshotMirror connects the backend selected by SNAPSHOT_BACKEND. It returns a nil
// mirror for the "none" backend. The returned close function is never nil.
func OpenSnapshotMirror(config Config) (ports.SnapshotMirror, func() error, error) {
	noop := func() error { return nil }

	switch config.SnapshotBackend {
	case SnapshotBackendPostgres:
		db, err := postgres.Open(postgres.DSN(
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
		))
		if err != nil {
			return nil, noop, err
		}
		return pgsnapshot.NewGormSnapshotRepository(db), func() error { return postgres.Close(db) }, nil
	case SnapshotBackendRedis:
		repo, err := redissnapshot.NewRedisSnapshotRepository(config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return repo, repo.Close, nil
	default:
		return nil, noop, nil
	}
}

// Restore loads both stores from their snapshots. A corrupt snapshot is an error: the
// service must not start on partial state.
func (c *CompositionRoot) Restore(ctx context.Context) error {
	return errors.Join(c.identities.Restore(ctx), c.orders.Restore(ctx))
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.identities, c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.identities, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	return commands.NewRequestPasswordResetCommandHandler(c.identities, c.tokens, c.notifier, c.config.FrontendURL)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(c.identities, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.identities)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.identities, c.hasher)
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.identities)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.identities, c.orders, c.policy)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.identities, c.orders)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.identities, c.orders, c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.identities, c.orders, c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.identities, c.orders, c.policy)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.identities)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.identities)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.identities, c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.identities, c.orders, c.policy)
}

// CreateHTTPServer wires every handler into the REST server. Requests are checked against
// the embedded OpenAPI document.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*apphttp.Server, error) {
	validator, err := apphttp.NewRequestValidator(ctx)
	if err != nil {
		return nil, err
	}

	handlers := apphttp.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		Login:                c.CreateLoginCommandHandler(),
		RequestPasswordReset: c.CreateRequestPasswordResetCommandHandler(),
		ResetPassword:        c.CreateResetPasswordCommandHandler(),
		UpdateProfile:        c.CreateUpdateProfileCommandHandler(),
		ChangePassword:       c.CreateChangePasswordCommandHandler(),
		ChangeUserRole:       c.CreateChangeUserRoleCommandHandler(),
		DeleteUser:           c.CreateDeleteUserCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),
		GetProfile:           c.CreateGetProfileQueryHandler(),
		ListUsers:            c.CreateListUsersQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
	}
	server := apphttp.NewServer(handlers, c.tokens, apphttp.NewMetrics("setralog"), c.logger)
	return server.WithRequestValidator(validator), nil
}

// CreateJobManager schedules the snapshot sync of both stores.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	syncJob := jobs.NewSnapshotSyncJob(
		[]jobs.SyncableStore{c.identities, c.orders},
		c.config.SnapshotSyncSchedule,
		c.logger,
	)
	return jobs.NewJobManager(syncJob)
}
