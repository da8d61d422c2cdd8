package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lancedalanon/medicine-ocr-api/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
