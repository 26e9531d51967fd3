package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/api/handlers"
	"github.com/medgrid/measure-console-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		zap.S().With(err).Fatal("failed to initialize")
	}

	zap.S().Infow("measure-console-api is up and running",
		"port", a.Config.Port,
		"upstream", a.Config.UpstreamURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
