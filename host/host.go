package host

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pborman/uuid"
)

// Host is a request for a docker host of a given instance type.
type Host struct {
	UUID         string `yaml:"uuid"`
	InstanceType string `yaml:"instanceType"`
}

func New(instanceType string) *Host {
	return &Host{
		UUID:         uuid.NewUUID().String(),
		InstanceType: instanceType,
	}
}

func (h *Host) row() table.Row {
	return table.Row{h.UUID, h.InstanceType}
}

func (h *Host) Print(w io.Writer) {
	Print(w, []*Host{h})
}

// Print renders hosts as a table ordered by instance type.
func Print(w io.Writer, hosts []*Host) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "UUID", Align: text.AlignLeft},
		{Name: "INSTANCE TYPE", Align: text.AlignLeft, WidthMax: 32},
	})
	t.AppendHeader(table.Row{"UUID", "INSTANCE TYPE"})
	for _, h := range hosts {
		t.AppendRow(h.row())
	}
	t.SortBy([]table.SortBy{{Name: "INSTANCE TYPE", Mode: table.Asc}})
	t.Render()
}
