package console

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestConsole_SeparatesReportFromLogs(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var out, errOut bytes.Buffer
	c := NewConsole(WithWriters(&out, &errOut), WithoutSpinner())

	c.Println("AWS Costs 2022-03-01 (Tuesday) UnblendedCost")
	c.Printf("|%s|%s|\n", "researchers-1", "3.75")
	c.LogInfo("fetched %d pages", 2)
	c.LogWarning("listing truncated")

	assert.Equal(t, "AWS Costs 2022-03-01 (Tuesday) UnblendedCost\n|researchers-1|3.75|\n", out.String())
	assert.Contains(t, errOut.String(), "fetched 2 pages")
	assert.Contains(t, errOut.String(), "listing truncated")
}

func TestConsole_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(WithWriters(&out, &errOut), WithQuiet(true))

	c.LogInfo("hidden")
	c.LogSuccess("hidden")
	status := c.Status("working")
	status.Update("still working")
	status.Stop()
	assert.Empty(t, errOut.String())

	c.LogError("shown")
	assert.Contains(t, errOut.String(), "shown")
}
