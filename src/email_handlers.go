package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/lib/mailer"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
)

func bookingConfirmationHTML(bookingId, bookingType, userName string, details types.JSONB, total float64) string {
	var rows strings.Builder
	for _, key := range utils.SortedKeys(details) {
		label := utils.TitleCase(strings.ReplaceAll(key, "_", " "))
		rows.WriteString(fmt.Sprintf("<tr><td style='padding: 8px; border-bottom: 1px solid #eee;'><strong>%s:</strong></td><td style='padding: 8px; border-bottom: 1px solid #eee;'>%v</td></tr>", label, details[key]))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background: linear-gradient(135deg, #0d9488, #f97316); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
		.content { background: #fff; padding: 30px; border: 1px solid #eee; }
		.booking-id { background: #f0f9ff; padding: 15px; border-radius: 8px; text-align: center; margin: 20px 0; }
		.details-table { width: 100%%; border-collapse: collapse; }
		.total { background: #f0fdf4; padding: 20px; border-radius: 8px; text-align: center; margin-top: 20px; }
		.footer { background: #f9fafb; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1 style="margin: 0;">✈️ Foster Tours</h1>
			<p style="margin: 10px 0 0 0;">Your %[1]s is Confirmed!</p>
		</div>
		<div class="content">
			<p>Dear <strong>%[2]s</strong>,</p>
			<p>Thank you for booking with Foster Tours! Your %[3]s has been successfully confirmed.</p>

			<div class="booking-id">
				<p style="margin: 0; font-size: 12px; color: #666;">Booking Reference</p>
				<p style="margin: 5px 0 0 0; font-size: 24px; font-weight: bold; color: #0d9488;">%[4]s</p>
			</div>

			<h3>Booking Details</h3>
			<table class="details-table">
				%[5]s
			</table>

			<div class="total">
				<p style="margin: 0; font-size: 14px; color: #666;">Total Amount</p>
				<p style="margin: 5px 0 0 0; font-size: 32px; font-weight: bold; color: #0d9488;">$%[6].2f</p>
			</div>

			<p style="margin-top: 30px;">If you have any questions, please don't hesitate to contact our support team.</p>
			<p>Happy travels! 🌍</p>
		</div>
		<div class="footer">
			<p>© 2025 Foster Tours. All rights reserved.</p>
			<p>This is an automated email. Please do not reply directly.</p>
			<p>WhatsApp: +234 9058 681 268 | Instagram: @foster_tours</p>
		</div>
	</div>
</body>
</html>`, utils.TitleCase(bookingType), userName, strings.ToLower(bookingType), bookingId, rows.String(), total)
}

func welcomeEmailHTML(userName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background: linear-gradient(135deg, #0d9488, #f97316); color: white; padding: 40px; text-align: center; border-radius: 10px 10px 0 0; }
		.content { background: #fff; padding: 30px; border: 1px solid #eee; }
		.cta { background: #0d9488; color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; display: inline-block; margin: 20px 0; }
		.footer { background: #f9fafb; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1 style="margin: 0; font-size: 36px;">✈️ Welcome to Foster Tours!</h1>
			<p style="margin: 15px 0 0 0; font-size: 18px;">Your journey begins here</p>
		</div>
		<div class="content">
			<p>Hello <strong>%s</strong>! 👋</p>
			<p>Welcome to Foster Tours - your all-in-one travel companion! We're thrilled to have you on board.</p>

			<h3>What you can do with Foster Tours:</h3>
			<ul style="padding-left: 20px;">
				<li>🛫 <strong>Book Flights</strong> - Find the best deals on flights worldwide</li>
				<li>🏨 <strong>Reserve Hotels</strong> - Discover perfect accommodations</li>
				<li>🎉 <strong>Explore Events</strong> - Join local tours and experiences</li>
				<li>🚗 <strong>Rent Vehicles</strong> - Get around with ease</li>
				<li>📝 <strong>Plan Itineraries</strong> - Create your perfect trip with AI assistance</li>
				<li>🛍️ <strong>Shop Travel Gear</strong> - Get everything you need</li>
			</ul>

			<p style="text-align: center;">
				<a href="#" class="cta">Start Exploring</a>
			</p>

			<p>Happy travels! 🌍</p>
			<p>- The Foster Tours Team</p>
		</div>
		<div class="footer">
			<p>© 2025 Foster Tours. All rights reserved.</p>
			<p>WhatsApp: +234 9058 681 268 | Instagram: @foster_tours</p>
		</div>
	</div>
</body>
</html>`, userName)
}

func emailHandlers(auth *gin.RouterGroup, admin *gin.RouterGroup) {
	admin.POST("/send", func(ctx *gin.Context) {
		var body types.SendEmailRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		mailer.Dispatch(&lib.SendMailInput{
			From:     config.SenderEmail(),
			FromName: "Foster Tours",
			To:       []string{body.ToEmail},
			Subject:  body.Subject,
			Body:     body.Content,
			Html:     true,
		})
		ctx.JSON(http.StatusOK, gin.H{"message": "Email queued for delivery"})
	})

	admin.GET("/status", func(ctx *gin.Context) {
		var sender any
		if lib.MailConfigured() {
			sender = config.SenderEmail()
		}
		ctx.JSON(http.StatusOK, gin.H{
			"configured":   lib.MailConfigured(),
			"sender_email": sender,
		})
	})

	auth.POST("/booking-confirmation", func(ctx *gin.Context) {
		var body types.BookingConfirmationEmailRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		html := bookingConfirmationHTML(body.BookingID, body.BookingType, body.UserName, body.BookingDetails, body.TotalAmount)
		subject := fmt.Sprintf("Booking Confirmation - %s #%s", utils.TitleCase(body.BookingType), body.BookingID)

		mailer.DispatchLogged(&lib.SendMailInput{
			From:     config.SenderEmail(),
			FromName: "Foster Tours",
			To:       []string{body.UserEmail},
			Subject:  subject,
			Body:     html,
			Html:     true,
		}, "booking_confirmation", body.BookingID, ctx.GetString("id"))
		ctx.JSON(http.StatusOK, gin.H{"message": "Booking confirmation email sent"})
	})

	auth.POST("/welcome", func(ctx *gin.Context) {
		mailer.Dispatch(&lib.SendMailInput{
			From:     config.SenderEmail(),
			FromName: "Foster Tours",
			To:       []string{ctx.GetString("email")},
			Subject:  "Welcome to Foster Tours! 🌍",
			Body:     welcomeEmailHTML(ctx.GetString("name")),
			Html:     true,
		})
		ctx.JSON(http.StatusOK, gin.H{"message": "Welcome email sent"})
	})
}
