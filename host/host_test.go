package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New("t2.micro")
	b := New("t2.micro")

	assert.Equal(t, "t2.micro", a.InstanceType)
	assert.NotEmpty(t, a.UUID)
	assert.NotEqual(t, a.UUID, b.UUID)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	h := &Host{UUID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", InstanceType: "m5.large"}
	h.Print(&out)

	rendered := out.String()
	assert.Contains(t, rendered, "UUID")
	assert.Contains(t, rendered, "INSTANCE TYPE")
	assert.Contains(t, rendered, h.UUID)
	assert.Contains(t, rendered, "m5.large")
}

func TestPrintListSortsByInstanceType(t *testing.T) {
	var out bytes.Buffer
	Print(&out, []*Host{
		{UUID: "b", InstanceType: "t2.small"},
		{UUID: "a", InstanceType: "m5.large"},
		{UUID: "c", InstanceType: "t2.micro"},
	})

	rendered := out.String()
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	require.Greater(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "┌"), "unexpected table border: %q", lines[0])

	large := strings.Index(rendered, "m5.large")
	micro := strings.Index(rendered, "t2.micro")
	small := strings.Index(rendered, "t2.small")
	require.True(t, large >= 0 && micro >= 0 && small >= 0)
	assert.Less(t, large, micro)
	assert.Less(t, micro, small)
}
