package cli

import (
	"fmt"
	"io"

	"github.com/diillson/aws-costbot-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas em w (stderr), sem
// misturar com o relatório impresso em stdout.
func displayWelcomeBanner(w io.Writer, versionStr string) {
	banner := `
   ___  _      _____    _____          __  ___       __ 
  / _ | | | /| / / __/  / ___/__  ___ / /_/ _ )___  / /_
 / __ | | |/ |/ /\ \   / /__/ _ \(_-</ __/ _  / _ \/ __/
/_/ |_| |__/|__/___/   \___/\___/___/\__/____/\___/\__/ 
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Get().Version {
		formattedVersion = versionStr
	}
	fmt.Fprintln(w, blue(fmt.Sprintf("AWS CostBot CLI (v%s)", formattedVersion)))
}
