package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
	"github.com/somapath/somapath-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "somapath", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Essay{},
		&types.EssayVersion{},
		&types.RoadmapProgress{},
		&types.University{},
		&types.Scholarship{},
		&types.Achievement{},
		&types.UserAchievement{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		stmt string
	}{
		{"fk_user_token_user_id", `
			ALTER TABLE "user_token"
			ADD CONSTRAINT "fk_user_token_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_essay_user_id", `
			ALTER TABLE "essay"
			ADD CONSTRAINT "fk_essay_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_essay_version_essay_id", `
			ALTER TABLE "essay_version"
			ADD CONSTRAINT "fk_essay_version_essay_id"
			FOREIGN KEY ("essay_id") REFERENCES "essay"("id")
			ON DELETE CASCADE`},
		{"fk_roadmap_progress_user_id", `
			ALTER TABLE "roadmap_progress"
			ADD CONSTRAINT "fk_roadmap_progress_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_user_achievement_user_id", `
			ALTER TABLE "user_achievement"
			ADD CONSTRAINT "fk_user_achievement_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_user_achievement_achievement_id", `
			ALTER TABLE "user_achievement"
			ADD CONSTRAINT "fk_user_achievement_achievement_id"
			FOREIGN KEY ("achievement_id") REFERENCES "achievement"("id")
			ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		var count int64
		if err := s.db.Raw(
			`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, c.name,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", c.name, err)
		}
		if count > 0 {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
