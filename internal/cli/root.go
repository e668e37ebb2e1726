package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"litboard/internal/core/repository"
	"litboard/internal/core/service"
	"litboard/internal/crypto"
	"litboard/internal/infrastructure/gormdb"
	"litboard/internal/session"
	"litboard/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "litboard",
	Short: "Litboard - GraphQL forum backend",
	Long: `Litboard is a small GraphQL backend for a forum-style application.

It provides:
- Post queries and CRUD mutations
- User registration and login with argon2id password hashing
- Redis-backed cookie sessions
- A single /graphql endpoint served over HTTP`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/litboard/config.yml)")
}

// initServices initializes shared infrastructure and services
func initServices(ctx context.Context) (*Services, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := gormdb.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	var blockKey []byte
	if cfg.CookieBlockKey != "" {
		blockKey = []byte(cfg.CookieBlockKey)
	}

	userRepo := gormdb.NewUserRepository(db)
	postRepo := gormdb.NewPostRepository(db)

	return &Services{
		Log:         log,
		DB:          db,
		Redis:       rdb,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		AuthService: service.NewAuthService(userRepo, crypto.NewArgon2Hasher()),
		Sessions:    session.NewRedisStore(rdb),
		Cookies:     session.NewCookieManager(cfg.CookieName, []byte(cfg.CookieHashKey), blockKey, !cfg.IsDevMode()),
	}, nil
}

func newLogger() (*zap.Logger, error) {
	if cfg.IsDevMode() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Services holds all initialized services
type Services struct {
	Log         *zap.Logger
	DB          *gorm.DB
	Redis       *redis.Client
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	AuthService *service.AuthService
	Sessions    session.Store
	Cookies     *session.CookieManager
}

// Close closes all resources
func (s *Services) Close() {
	if s.Redis != nil {
		s.Redis.Close()
	}
	if s.DB != nil {
		gormdb.Close(s.DB)
	}
	if s.Log != nil {
		s.Log.Sync()
	}
}
