package main

import (
	"context"
	"os"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/auth"
	"motoservice-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// demoShop is one shop with its catalog and crew.
type demoShop struct {
	name     string
	rating   float64
	services []entity.ShopService
	workers  []entity.Worker
}

var demoShops = []demoShop{
	{
		name:   "Bengkel Jaya Motor",
		rating: 4.6,
		services: []entity.ShopService{
			{Name: "Oil change", Price: 75000},
			{Name: "Brake pad replacement", Price: 150000},
			{Name: "Full tune-up", Price: 250000},
		},
		workers: []entity.Worker{
			{Name: "Budi", Rating: 4.8, IsAvailable: true, Phone: "+6281200000001"},
			{Name: "Agus", Rating: 4.2, IsAvailable: true, Phone: "+6281200000002"},
			{Name: "Sari", Rating: 3.9, IsAvailable: false, Phone: "+6281200000003"},
		},
	},
	{
		name:   "Speed Garage",
		rating: 2.7,
		services: []entity.ShopService{
			{Name: "Oil change", Price: 70000},
			{Name: "Chain adjustment", Price: 40000},
		},
		workers: []entity.Worker{
			{Name: "Rudi", Rating: 3.1, IsAvailable: true, Phone: "+6281200000004"},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}
	secret := os.Getenv("JWT_SECRET")

	db, err := database.NewGormDBFromDSN(dsn, false, database.DefaultPoolConfig())
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		color.Red("Error: Failed to begin transaction: %v", err)
		os.Exit(1)
	}
	defer uow.Rollback()

	color.Cyan("Seeding demo shops...")

	var actors []entity.Actor
	for _, demo := range demoShops {
		shop := &entity.Shop{OwnerId: uuid.New(), Name: demo.name, Rating: demo.rating}
		if err := uow.ShopRepository().Create(ctx, shop); err != nil {
			color.Red("Error creating shop '%s': %v", demo.name, err)
			os.Exit(1)
		}
		color.Green("Created shop: %s (%s)", shop.Name, shop.Id)
		actors = append(actors, entity.Actor{Id: shop.OwnerId, Role: entity.RoleOwner})

		for _, svc := range demo.services {
			svc.ShopId = shop.Id
			if err := uow.ShopRepository().CreateService(ctx, &svc); err != nil {
				color.Red("Error creating service '%s': %v", svc.Name, err)
				os.Exit(1)
			}
			color.Green("  service: %s %.0f (%s)", svc.Name, svc.Price, svc.Id)
		}

		for _, w := range demo.workers {
			w.ShopId = shop.Id
			if err := uow.WorkerRepository().Create(ctx, &w); err != nil {
				color.Red("Error creating worker '%s': %v", w.Name, err)
				os.Exit(1)
			}
			color.Green("  worker: %s rating %.1f available=%t (%s)", w.Name, w.Rating, w.IsAvailable, w.Id)
			actors = append(actors, entity.Actor{Id: w.Id, Role: entity.RoleWorker})
		}
	}

	if err := uow.Commit(); err != nil {
		color.Red("Error: Failed to commit seed data: %v", err)
		os.Exit(1)
	}

	if secret == "" {
		color.Yellow("JWT_SECRET not set, skipping demo tokens")
		return
	}

	actors = append(actors,
		entity.Actor{Id: uuid.New(), Role: entity.RoleCustomer},
		entity.Actor{Id: uuid.New(), Role: entity.RoleAdmin},
	)
	color.Cyan("Demo bearer tokens (24h):")
	for _, a := range actors {
		token, err := auth.Issue(secret, a, 24*time.Hour)
		if err != nil {
			color.Red("Error signing token for %s: %v", a.Id, err)
			continue
		}
		color.White("%-8s %s\n%s\n", a.Role, a.Id, token)
	}
}
