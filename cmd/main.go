package main

import (
	"os"

	"vitalsync/config"
	"vitalsync/routes"
	"vitalsync/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
