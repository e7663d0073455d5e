package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"schoolops/internal/config"
	dl "schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/domain/submission"
	duow "schoolops/internal/core/domain/unit_of_work"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/domain/workbook"
	dbschool "schoolops/internal/db/school"
	dbsubmission "schoolops/internal/db/submission"
	uow "schoolops/internal/db/unit_of_work"
	dbuser "schoolops/internal/db/user"
	dbworkbook "schoolops/internal/db/workbook"
	"schoolops/internal/implementations/email"
	"schoolops/internal/implementations/logging"
	passwordhasher "schoolops/internal/implementations/password_hasher"
	resettokengenerator "schoolops/internal/implementations/reset_token_generator"
	submissionevents "schoolops/internal/implementations/submission_events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork           duow.UnitOfWork
	UserRepository       user.UserRepository
	ResetTokenRepository user.ResetTokenRepository
	SchoolRepository     school.Repository
	WorkbookRepository   workbook.Repository
	SubmissionRepository submission.Repository

	PasswordHasher      user.PasswordHasher
	ResetTokenGenerator user.ResetTokenGenerator
	ResetTokenSender    user.ResetTokenSender

	SubmissionEventPublisher submission.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ResetTokenRepository = dbuser.NewPgxResetTokenRepository(deps.DB)
	deps.SchoolRepository = dbschool.NewPgxRepository(deps.DB)
	deps.WorkbookRepository = dbworkbook.NewPgxRepository(deps.DB)
	deps.SubmissionRepository = dbsubmission.NewPgxRepository(deps.DB)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ResetTokenGenerator = resettokengenerator.NewGenerator()
	deps.ResetTokenSender = email.NewResetTokenSender(
		deps.AwsConfig,
		deps.Config.EmailSender,
		deps.Config.FrontendResetBase,
		deps.Config.PasswordResetValidDuration(),
	)

	deps.SubmissionEventPublisher = submissionevents.NewSSEPublisher(deps.Logger, deps.SseServer)

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKeyID,
				deps.Config.AwsSecretAccessKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDSN,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
