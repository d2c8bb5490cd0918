package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"salescrm/internal/database"
	"salescrm/internal/domain"
	"salescrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("crm.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contracts")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	customers := repository.NewCustomerRepository(db)
	contracts := repository.NewContractRepository(db)

	log.Println("Creating users...")
	manager := seedUser(ctx, users, "manager", "Maria", "Durand", "manager@salescrm.io", domain.RoleManager)
	seller := seedUser(ctx, users, "seller", "Paul", "Martin", "seller@salescrm.io", domain.RoleSeller)
	support := seedUser(ctx, users, "support", "Lea", "Bernard", "support@salescrm.io", domain.RoleSupport)
	log.Printf("manager=%d seller=%d support=%d", manager.ID, seller.ID, support.ID)

	log.Println("Creating customers...")
	acme := &domain.Customer{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@acme.com",
		CompagnyName: "Acme",
		SellerID:     &seller.ID,
	}
	if err := customers.Create(ctx, acme); err != nil {
		log.Fatal(err)
	}

	solo := &domain.Customer{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@mail.com",
		SellerID:  &seller.ID,
	}
	if err := customers.Create(ctx, solo); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating contracts...")
	draft := &domain.Contract{
		CustomerID: acme.ID,
		SellerID:   &seller.ID,
		SupportID:  &support.ID,
		Due:        500,
	}
	if err := contracts.Create(ctx, draft); err != nil {
		log.Fatal(err)
	}

	toSign := &domain.Contract{
		CustomerID: solo.ID,
		SellerID:   &seller.ID,
		SupportID:  &support.ID,
		Due:        1200,
	}
	if err := contracts.Create(ctx, toSign); err != nil {
		log.Fatal(err)
	}

	launch := &domain.Event{
		Name:      "Launch",
		Location:  "Paris",
		DateEvent: time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC),
	}
	if _, err := contracts.Sign(ctx, toSign.ID, launch); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed done.")
}

func seedUser(ctx context.Context, users *repository.UserRepository, username, first, last, email string, role domain.Role) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(username+"123"), bcrypt.DefaultCost)
	u := &domain.User{
		Username:     username,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Admin:        role == domain.RoleManager,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
	return u
}
