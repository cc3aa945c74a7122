package boot

import (
	"frontrow/src/common"
	"frontrow/src/db"
	"frontrow/src/lib"
	"frontrow/src/models"
	"log"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Showtime{},
		&models.SeatPrice{},
		&models.Ticket{},
		&models.TicketSeat{},
		&models.BookedSeat{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the periodic job that recomputes showtime fill
// labels from the booked-seat ledger.
func InitScheduler() {
	id, err := lib.CreateCronJob(common.RefreshFillLevels, 5*time.Minute)
	if err != nil {
		log.Printf("Error scheduling fill-level refresh: %s\n", err.Error())
		return
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	log.Printf("Job ID: %s\n", *id)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
