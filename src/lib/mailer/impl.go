package mailer

import (
	"log"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
)

// Dispatch sends in the background, the request never waits on SMTP.
func Dispatch(input *lib.SendMailInput) {
	go func() {
		if err := lib.SendMail(input); err != nil {
			log.Printf("[mailer] Failed to send %q to %v: %s\n", input.Subject, input.To, err.Error())
		}
	}()
}

// DispatchLogged sends in the background and records an email_logs row.
func DispatchLogged(input *lib.SendMailInput, logType, bookingId, userId string) {
	go func() {
		if err := lib.SendMail(input); err != nil {
			log.Printf("[mailer] Failed to send %q to %v: %s\n", input.Subject, input.To, err.Error())
			return
		}
		d := db.GetDb()
		for _, to := range input.To {
			entry := models.EmailLog{
				Type:      logType,
				ToEmail:   to,
				BookingID: bookingId,
				UserID:    userId,
			}
			if err := d.Create(&entry).Error; err != nil {
				log.Printf("[mailer] Failed to record email log: %s\n", err.Error())
			}
		}
	}()
}
