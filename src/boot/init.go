package boot

import (
	"log"
	"time"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/utils"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Booking{},
		&models.PaymentTransaction{},
		&models.WalletTransaction{},
		&models.Cart{},
		&models.StoreOrder{},
		&models.Follow{},
		&models.PostLike{},
		&models.PostComment{},
		&models.PostShare{},
		&models.Story{},
		&models.Favorite{},
		&models.Call{},
		&models.LocationShare{},
		&models.Itinerary{},
		&models.AISession{},
		&models.SearchRecord{},
		&models.EmailLog{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the recurring sweeps: stale pending payments are
// expired after a day, and stories past their expiry are removed.
func InitScheduler() {
	id, err := lib.CreateCronJob(func() {
		if _, err := utils.ExpireStalePayments(24 * time.Hour); err != nil {
			log.Printf("Error expiring stale payments: %s\n", err.Error())
		}
		ExpireStories()
	}, 1*time.Hour)
	if err != nil {
		log.Printf("Error running job: %s\n", err.Error())
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
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}

func ExpireStories() {
	db := db.GetDb()
	err := db.
		Transaction(func(tx *gorm.DB) error {
			return tx.
				Where("expires_at < ?", time.Now()).
				Delete(&models.Story{}).
				Error
		})
	if err != nil {
		log.Printf("Error while removing expired stories: %s\n", err.Error())
	}
}
