// Comando seed prepara o banco de dados com o catálogo inicial: o totem
// sentinela "none", os totens e recompensas padrão e, opcionalmente, um
// usuário administrador definido por ADMIN_EMAIL/ADMIN_PASSWORD.
package main

import (
	"context"
	"log"
	"os"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/infrastructure/config"
	"github.com/rafabene/poemario-backend/internal/infrastructure/logging"
	"github.com/rafabene/poemario-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/poemario-backend/internal/services"
)

var defaultTotems = []entities.Totem{
	{Key: entities.DefaultTotemKey, Name: "Nenhum", Description: "Totem reservado para usuários que ainda não escolheram o seu"},
	{Key: "owl", Name: "Coruja", Description: "Observadora e noturna"},
	{Key: "wolf", Name: "Lobo", Description: "Leal à alcateia"},
	{Key: "heron", Name: "Garça", Description: "Paciente à beira do rio"},
	{Key: "fox", Name: "Raposa", Description: "Astuta entre as sombras"},
}

var defaultRewards = []entities.Reward{
	{Name: "first_poem", Description: "Publicou o primeiro poema"},
	{Name: "first_feather", Description: "Recebeu a primeira pena"},
	{Name: "golden_quill", Description: "Recebeu dez penas de ouro"},
	{Name: "patron", Description: "Concedeu cem penas a outros autores"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("seeding database", "env", cfg.Env)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	ctx := context.Background()

	totemRepo := postgres.NewTotemRepository(db)
	rewardRepo := postgres.NewRewardRepository(db)
	userRepo := postgres.NewUserRepository(db)
	poemRepo := postgres.NewPoemRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	for _, totem := range defaultTotems {
		existing, err := totemRepo.FindByKey(ctx, totem.Key)
		if err != nil {
			logger.Error("failed to look up totem", "key", totem.Key, "error", err)
			log.Fatal(err)
		}
		if existing != nil {
			logger.Info("totem already present", "key", totem.Key)
			continue
		}

		t := totem
		if err := totemRepo.Create(ctx, &t); err != nil {
			logger.Error("failed to create totem", "key", totem.Key, "error", err)
			log.Fatal(err)
		}
		logger.Info("totem created", "key", t.Key, "id", t.ID)
	}

	for _, reward := range defaultRewards {
		existing, err := rewardRepo.FindByName(ctx, reward.Name)
		if err != nil {
			logger.Error("failed to look up reward", "name", reward.Name, "error", err)
			log.Fatal(err)
		}
		if existing != nil {
			logger.Info("reward already present", "name", reward.Name)
			continue
		}

		r := reward
		if err := rewardRepo.Create(ctx, &r); err != nil {
			logger.Error("failed to create reward", "name", reward.Name, "error", err)
			log.Fatal(err)
		}
		logger.Info("reward created", "name", r.Name, "id", r.ID)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		logger.Info("seed finished", "admin_user", false)
		return
	}

	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err != nil {
		logger.Error("failed to look up admin user", "error", err)
		log.Fatal(err)
	}
	if existing != nil {
		logger.Info("admin user already present", "email", adminEmail)
		logger.Info("seed finished", "admin_user", true)
		return
	}

	userService := services.NewUserService(userRepo, poemRepo, voteRepo, totemRepo, rewardRepo, logger)
	admin, err := userService.CreateUser(ctx, services.CreateUserInput{
		Email:    adminEmail,
		Pseudo:   "admin",
		Password: adminPassword,
		Roles:    []entities.Role{entities.RoleAdmin, entities.RoleUser},
	})
	if err != nil {
		logger.Error("failed to create admin user", "error", err)
		log.Fatal(err)
	}

	logger.Info("admin user created", "id", admin.ID, "email", adminEmail)
	logger.Info("seed finished", "admin_user", true)
}
