package cmd

import (
	"fmt"
	"io"

	"github.com/michaelhenkel/sdocker/command"
	"github.com/michaelhenkel/sdocker/host"
	log "github.com/sirupsen/logrus"
)

// createHost records the requested host and prints it. Nothing is provisioned.
func createHost(inv *command.Invocation, out io.Writer) error {
	instanceType, ok := inv.Value("instance-type")
	if !ok {
		return fmt.Errorf("%s: instance type not set", inv.Command)
	}
	h := host.New(instanceType)
	log.WithFields(log.Fields{
		"uuid":          h.UUID,
		"instance-type": h.InstanceType,
	}).Info("host requested")
	h.Print(out)
	return nil
}
