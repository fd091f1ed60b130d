package main

import (
	"context"
	"fmt"
	"time"

	"github.com/classtrack/attendance-backend/internal/config"
	"github.com/classtrack/attendance-backend/internal/database"
	"github.com/classtrack/attendance-backend/internal/logger"
	"github.com/classtrack/attendance-backend/internal/model"
	"github.com/classtrack/attendance-backend/internal/repository"
	"github.com/classtrack/attendance-backend/internal/service"
)

// Seeds a demo roster across three classes plus two weeks of attendance
// history, so the dashboard and export have something to show.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, log)

	names := []string{
		"Aiden Clarke", "Bella Hart", "Caleb Moore", "Daisy Nguyen", "Ethan Patel",
		"Fiona Brooks", "Gavin Reed", "Hana Suzuki", "Ivan Petrov", "Julia Santos",
		"Kofi Mensah", "Lena Fischer", "Marco Rossi", "Nadia Rahman", "Oscar Lindgren",
		"Priya Sharma", "Quentin Dubois", "Rosa Alvarez", "Samuel Okafor", "Tara Byrne",
		"Umar Farouk", "Vera Kovacs", "Wyatt Collins", "Ximena Torres", "Yusuf Demir",
		"Zoe Mitchell", "Adam Kowalski", "Bianca Costa", "Connor Walsh", "Dina Haddad",
	}
	classes := []string{"10-A", "10-B", "11-A"}

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	var ids []int
	for i, name := range names {
		student := &model.Student{
			RollNo:    fmt.Sprintf("R%03d", i+1),
			Name:      name,
			ClassName: classes[i%len(classes)],
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", student.Name, student.RollNo, err)
			continue
		}
		ids = append(ids, student.ID)
	}
	fmt.Printf("Created %d/%d students\n", len(ids), len(names))

	fmt.Println("=== Seeding 14 Days of Attendance ===")

	marked := 0
	for back := 13; back >= 0; back-- {
		day := time.Now().UTC().AddDate(0, 0, -back)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		for i, id := range ids {
			req := model.MarkAttendanceRequest{
				StudentID:   id,
				Status:      string(model.StatusPresent),
				CheckInTime: fmt.Sprintf("08:%02d", (i*7)%30),
			}
			// Roughly one in ten absent, one in eight late.
			switch {
			case (i+back)%10 == 0:
				req.Status = string(model.StatusAbsent)
				req.CheckInTime = ""
			case (i+back)%8 == 0:
				req.Status = string(model.StatusLate)
				req.CheckInTime = fmt.Sprintf("09:%02d", (i*3)%30)
				req.Remark = "late arrival"
			}

			if _, _, err := attendanceService.Mark(ctx, req, day); err != nil {
				fmt.Printf("Error marking student %d on %s: %v\n", id, day.Format(model.DateLayout), err)
				continue
			}
			marked++
		}
	}

	fmt.Printf("\nSeed completed! %d students, %d attendance records.\n", len(ids), marked)
}
