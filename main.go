package main

import (
	"github.com/michaelhenkel/sdocker/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetReportCaller(false)
	cmd.Execute()
}
