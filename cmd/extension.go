package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/moneytracker/config"
)

// EnvVerbose tells extensions that verbose logging is on.
const EnvVerbose = "MT_VERBOSE"

// RunExtension attempts to find and execute an external mt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The resolved settings are passed to the extension through the
// environment variables read by the config package.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "mt-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cfg, err := Settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, config.EnvLedgerFile+"="+cfg.LedgerFile)
	cmd.Env = append(cmd.Env, config.EnvBackend+"="+cfg.BackendFor(cfg.LedgerFile))
	cmd.Env = append(cmd.Env, config.EnvCurrency+"="+cfg.Currency)
	cmd.Env = append(cmd.Env, config.EnvExportName+"="+cfg.ExportName)
	cmd.Env = append(cmd.Env, config.EnvStyle+"="+cfg.Style)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
