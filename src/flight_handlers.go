package main

import (
	"log"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
)

func flightHandlers(g *gin.RouterGroup) {
	g.POST("/search", func(ctx *gin.Context) {
		var body types.FlightSearchRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if config.AmadeusAPIKey() != "" {
			flights, err := lib.AmadeusSearchFlights(body.Origin, body.Destination, body.DepartureDate, body.Passengers)
			if err == nil && len(flights) > 0 {
				recordSearch("flight", types.JSONB{
					"origin":         body.Origin,
					"destination":    body.Destination,
					"departure_date": body.DepartureDate,
					"return_date":    body.ReturnDate,
					"passengers":     body.Passengers,
				}, len(flights), "amadeus", ctx.GetString("id"))
				ctx.JSON(http.StatusOK, gin.H{"flights": flights, "total": len(flights), "source": "amadeus"})
				return
			}
			if err != nil {
				log.Printf("amadeus flight search failed: %s", err.Error())
			}
		}

		flights := utils.GenerateMockFlights(body.Origin, body.Destination, body.DepartureDate, body.Passengers)
		recordSearch("flight", types.JSONB{
			"origin":         body.Origin,
			"destination":    body.Destination,
			"departure_date": body.DepartureDate,
			"return_date":    body.ReturnDate,
			"passengers":     body.Passengers,
		}, len(flights), "mock", ctx.GetString("id"))
		ctx.JSON(http.StatusOK, gin.H{"flights": flights, "total": len(flights), "source": "mock"})
	})

	g.GET("/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, catalogFlightDetail(params.ID))
	})
}

func hotelHandlers(g *gin.RouterGroup) {
	g.POST("/search", func(ctx *gin.Context) {
		var body types.HotelSearchRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if config.AmadeusAPIKey() != "" {
			hotels, err := lib.AmadeusSearchHotels(body.Location, body.CheckInDate, body.CheckOutDate, body.Guests)
			if err == nil && len(hotels) > 0 {
				recordSearch("hotel", types.JSONB{
					"location":  body.Location,
					"check_in":  body.CheckInDate,
					"check_out": body.CheckOutDate,
					"guests":    body.Guests,
				}, len(hotels), "amadeus", ctx.GetString("id"))
				ctx.JSON(http.StatusOK, gin.H{"hotels": hotels, "total": len(hotels), "source": "amadeus"})
				return
			}
			if err != nil {
				log.Printf("amadeus hotel search failed: %s", err.Error())
			}
		}

		hotels := utils.GenerateMockHotels(body.Location)
		recordSearch("hotel", types.JSONB{
			"location":  body.Location,
			"check_in":  body.CheckInDate,
			"check_out": body.CheckOutDate,
			"guests":    body.Guests,
		}, len(hotels), "mock", ctx.GetString("id"))
		ctx.JSON(http.StatusOK, gin.H{"hotels": hotels, "total": len(hotels), "source": "mock"})
	})

	g.GET("/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, catalogHotelDetail(params.ID))
	})
}

func recordSearch(kind string, query types.JSONB, resultCount int, source, userId string) {
	record := models.SearchRecord{
		UserID:      userId,
		Kind:        kind,
		Query:       query,
		ResultCount: resultCount,
		Source:      source,
	}
	if err := db.GetDb().Create(&record).Error; err != nil {
		log.Printf("could not record %s search: %s", kind, err.Error())
	}
}
