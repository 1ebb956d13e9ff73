// Seeds a demo business with services, professionals and a spread of
// appointments so the dashboard and booking page have data to show.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/robsonrdev/AgendaFacil-saas/config"
	"github.com/robsonrdev/AgendaFacil-saas/database"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/services/business"
)

const demoEmail = "demo@agendafacil.dev"

func main() {
	config.LoadConfig()
	database.InitDB()

	businesses := database.Collection("businesses")
	services := database.Collection("services")
	professionals := database.Collection("professionals")
	appointments := database.Collection("appointments")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear any previous demo tenant.
	var existing models.Business
	if err := businesses.FindOne(ctx, bson.M{"email": demoEmail}).Decode(&existing); err == nil {
		for _, coll := range []struct {
			name   string
			filter bson.M
		}{
			{"businesses", bson.M{"id": existing.ID}},
			{"services", bson.M{"businessId": existing.ID}},
			{"professionals", bson.M{"businessId": existing.ID}},
			{"appointments", bson.M{"businessId": existing.ID}},
		} {
			if _, err := database.Collection(coll.name).DeleteMany(ctx, coll.filter); err != nil {
				log.Fatalf("Failed to clear %s: %v", coll.name, err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	now := time.Now()
	schedule := business.SettingsInput{
		BusinessName: "Studio Bela Vista",
		Phone:        "+55 11 99999-0000",
		Address:      "Rua das Flores 123, São Paulo",
		Description:  "Hair and beauty studio in the heart of the city.",
		Amenities:    []string{"wifi", "parking", "card"},
		WorkingDays:  []string{"mon", "tue", "wed", "thu", "fri", "sat"},
		OpenTime:     "09:00",
		CloseTime:    "18:00",
		LunchBreak:   true,
		LunchStart:   "12:00",
		LunchEnd:     "13:00",
		LunchDays:    []string{"mon", "tue", "wed", "thu", "fri"},
	}

	biz := models.Business{
		ID:           uuid.NewString(),
		Email:        demoEmail,
		PasswordHash: string(hash),
		BusinessName: schedule.BusinessName,
		Phone:        schedule.Phone,
		Address:      schedule.Address,
		Description:  schedule.Description,
		Amenities:    schedule.Amenities,
		WorkingDays:  schedule.WorkingDays,
		OpenTime:     schedule.OpenTime,
		CloseTime:    schedule.CloseTime,
		LunchBreak:   schedule.LunchBreak,
		LunchStart:   schedule.LunchStart,
		LunchEnd:     schedule.LunchEnd,
		LunchDays:    schedule.LunchDays,
		Hours:        business.FormatWeeklyHours(schedule),
		Plan:         string(models.TierPro),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := businesses.InsertOne(ctx, biz); err != nil {
		log.Fatalf("Failed to insert demo business: %v", err)
	}

	catalog := []models.Service{
		{ID: uuid.NewString(), BusinessID: biz.ID, Name: "Haircut", Description: "Cut and finish", Price: 80, Duration: 30, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), BusinessID: biz.ID, Name: "Coloring", Description: "Full coloring", Price: 220, Duration: 90, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), BusinessID: biz.ID, Name: "Manicure", Description: "Hands and nails", Price: 60, Duration: 30, Active: false, CreatedAt: now, UpdatedAt: now},
	}
	docs := make([]interface{}, len(catalog))
	for i, svc := range catalog {
		docs[i] = svc
	}
	if _, err := services.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert demo services: %v", err)
	}

	pros := []interface{}{
		models.Professional{ID: uuid.NewString(), BusinessID: biz.ID, Name: "Ana Souza", Level: "Senior", Active: true, CreatedAt: now, UpdatedAt: now},
		models.Professional{ID: uuid.NewString(), BusinessID: biz.ID, Name: "Carlos Lima", Level: "Junior", Active: true, CreatedAt: now, UpdatedAt: now},
	}
	if _, err := professionals.InsertMany(ctx, pros); err != nil {
		log.Fatalf("Failed to insert demo professionals: %v", err)
	}

	// Scatter appointments over the next 5 days on the half-hour grid.
	customers := []string{"Beatriz", "João", "Larissa", "Pedro", "Marina", "Rafael"}
	statuses := []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed, models.StatusCanceled}
	var appts []interface{}
	for day := 0; day < 5; day++ {
		date := now.AddDate(0, 0, day)
		for i := 0; i < 3; i++ {
			svc := catalog[rand.Intn(2)]
			hour := 9 + rand.Intn(8)
			minute := 30 * rand.Intn(2)
			timeOfDay := fmt.Sprintf("%02d:%02d", hour, minute)
			when := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)

			appt := models.NewAppointment(biz.ID, svc, when, timeOfDay,
				customers[rand.Intn(len(customers))], "+55 11 98888-0000")
			appt.Status = statuses[rand.Intn(len(statuses))]
			appt.CreatedAt = now
			appts = append(appts, appt)
		}
	}
	if _, err := appointments.InsertMany(ctx, appts); err != nil {
		log.Fatalf("Failed to insert demo appointments: %v", err)
	}

	fmt.Printf("Seeded business %s (%s) with %d services, %d professionals, %d appointments\n",
		biz.BusinessName, biz.ID, len(catalog), len(pros), len(appts))
	fmt.Printf("Login: %s / demo1234\n", demoEmail)
}
